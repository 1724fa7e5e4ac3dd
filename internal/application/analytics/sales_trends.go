package analytics

import (
	"sort"
	"time"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

const maxTrendPoints = 30

// BuildPeakHours agrupa las órdenes por hora local del día (0–23). Solo
// aparecen las horas con al menos una orden; salen ordenadas de mayor a menor
// conteo, con la hora menor primero en caso de empate.
func BuildPeakHours(orders []entity.Order) []dto.PeakHourDTO {
	byHour := make(map[int]int)
	for _, o := range orders {
		byHour[o.CreatedAt.Hour()]++
	}

	buckets := make([]dto.PeakHourDTO, 0, len(byHour))
	for hour, count := range byHour {
		buckets = append(buckets, dto.PeakHourDTO{Hour: hour, OrderCount: count})
	}
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].OrderCount != buckets[j].OrderCount {
			return buckets[i].OrderCount > buckets[j].OrderCount
		}
		return buckets[i].Hour < buckets[j].Hour
	})
	return buckets
}

// BuildCategoryTrends acumula ingresos por categoría recorriendo cada línea
// de cada orden. El conteo es por línea, no por orden: una orden con N líneas
// de la misma categoría suma N ocurrencias. categoryByProduct resuelve la
// categoría de cada producto; las líneas de productos ya eliminados del
// catálogo se omiten. Salida ordenada de mayor a menor ingreso.
func BuildCategoryTrends(orders []entity.Order, categoryByProduct map[string]string) []dto.CategoryTrendDTO {
	type acc struct {
		count   int
		revenue decimal.Decimal
	}
	byCategory := make(map[string]*acc)

	for _, o := range orders {
		for _, item := range o.Items {
			category, ok := categoryByProduct[item.ProductID]
			if !ok {
				continue
			}
			a := byCategory[category]
			if a == nil {
				a = &acc{}
				byCategory[category] = a
			}
			a.count++
			a.revenue = a.revenue.Add(item.Subtotal())
		}
	}

	trends := make([]dto.CategoryTrendDTO, 0, len(byCategory))
	for category, a := range byCategory {
		trends = append(trends, dto.CategoryTrendDTO{
			Category:     category,
			OrderCount:   a.count,
			TotalRevenue: a.revenue.Round(2),
		})
	}
	sort.Slice(trends, func(i, j int) bool {
		if !trends[i].TotalRevenue.Equal(trends[j].TotalRevenue) {
			return trends[i].TotalRevenue.GreaterThan(trends[j].TotalRevenue)
		}
		return trends[i].Category < trends[j].Category
	})
	return trends
}

// dailyPoint agregado interno de un día calendario.
type dailyPoint struct {
	date    string
	revenue decimal.Decimal
	orders  int
}

// BuildDailyTrend agrupa las órdenes por día calendario sumando monto y
// conteo. La ventana empieza en el mayor entre el inicio del filtro activo y
// `now - min(días del rango, 30)`, y la serie se recorta a 30 puntos como
// máximo, en orden ascendente de fecha.
func BuildDailyTrend(orders []entity.Order, rng DateRange, now time.Time) ([]dto.RevenueTrendPointDTO, []dto.OrdersTrendPointDTO) {
	impliedDays := rng.WindowDays()
	if impliedDays == 0 || impliedDays > maxTrendPoints {
		impliedDays = maxTrendPoints
	}
	windowStart := startOfDay(now.AddDate(0, 0, -impliedDays))
	if rng.Start != nil && rng.Start.After(windowStart) {
		windowStart = *rng.Start
	}

	byDay := make(map[string]*dailyPoint)
	for _, o := range orders {
		if o.CreatedAt.Before(windowStart) {
			continue
		}
		key := o.CreatedAt.Format(customDateLayout)
		p := byDay[key]
		if p == nil {
			p = &dailyPoint{date: key}
			byDay[key] = p
		}
		p.revenue = p.revenue.Add(o.TotalAmount)
		p.orders++
	}

	points := make([]dailyPoint, 0, len(byDay))
	for _, p := range byDay {
		points = append(points, *p)
	}
	sort.Slice(points, func(i, j int) bool { return points[i].date < points[j].date })
	if len(points) > maxTrendPoints {
		points = points[len(points)-maxTrendPoints:]
	}

	revenue := make([]dto.RevenueTrendPointDTO, 0, len(points))
	counts := make([]dto.OrdersTrendPointDTO, 0, len(points))
	for _, p := range points {
		revenue = append(revenue, dto.RevenueTrendPointDTO{Date: p.date, Revenue: p.revenue.Round(2)})
		counts = append(counts, dto.OrdersTrendPointDTO{Date: p.date, OrderCount: p.orders})
	}
	return revenue, counts
}
