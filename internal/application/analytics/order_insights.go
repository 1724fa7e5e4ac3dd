package analytics

import (
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
	"github.com/jhoicas/Tienda-api/pkg/normalize"
	"github.com/shopspring/decimal"
)

const (
	topLocations      = 10
	locationKeyMaxLen = 30
	fallbackAvgDays   = 30
)

// insightInputs resultados de las consultas independientes que alimentan la
// sección de insights de órdenes. Las consultas no dependen entre sí y el
// orden en que terminan no importa.
type insightInputs struct {
	orders       []entity.Order
	totals       repository.RevenueTotals
	totalOrders  int
	delivered    int
	pending      int
	statusCounts []repository.StatusCount
	earliest     *time.Time // solo se consulta cuando no hay filtro de fechas
}

// buildOrderInsights concilia ingresos y arma las métricas operativas del
// período. RevenueGrowth queda en cero; lo completa el motor de comparación
// cuando hay un modo activo.
func buildOrderInsights(in insightInputs, rng DateRange, now time.Time) dto.OrderInsightsDTO {
	performance := decimal.Zero
	if in.totalOrders > 0 {
		performance = decimal.NewFromInt(int64(in.delivered)).
			Div(decimal.NewFromInt(int64(in.totalOrders))).
			Mul(hundred).
			Round(2)
	}

	breakdown := make(map[string]int, len(in.statusCounts))
	for _, sc := range in.statusCounts {
		breakdown[sc.Status] = sc.Count
	}

	return dto.OrderInsightsDTO{
		DeliveryPerformance:  performance,
		TotalGrossRevenue:    in.totals.Gross.Round(2),
		TotalOriginalAmount:  in.totals.Original.Round(2),
		TotalDiscountAmount:  in.totals.Discount.Round(2),
		NetRevenue:           in.totals.Original.Sub(in.totals.Discount).Round(2),
		TotalOrders:          in.totalOrders,
		DeliveredOrders:      in.delivered,
		PendingOrders:        in.pending,
		UniqueCustomers:      countUniqueCustomers(in.orders),
		AvgRevenuePerDay:     avgRevenuePerDay(in.totals.Gross, rng, in.earliest, now),
		RevenueGrowth:        decimal.Zero,
		StatusBreakdown:      breakdown,
		TopDeliveryLocations: buildTopLocations(in.orders),
	}
}

// countUniqueCustomers cuenta clientes distintos con la unión etiquetada de
// la orden: usuario registrado o teléfono de invitado. Es una aproximación,
// no una verificación de identidad.
func countUniqueCustomers(orders []entity.Order) int {
	seen := make(map[string]struct{}, len(orders))
	for _, o := range orders {
		seen[o.CustomerKey().Key()] = struct{}{}
	}
	return len(seen)
}

// avgRevenuePerDay reparte el ingreso bruto entre los días de la ventana
// activa. Sin filtro de fechas divide por los días desde la primera orden
// registrada, o por 30 si la tienda no tiene órdenes.
func avgRevenuePerDay(gross decimal.Decimal, rng DateRange, earliest *time.Time, now time.Time) decimal.Decimal {
	days := rng.WindowDays()
	if days == 0 {
		days = fallbackAvgDays
		if earliest != nil {
			d := int(now.Sub(*earliest).Hours() / 24)
			if d < 1 {
				d = 1
			}
			days = d
		}
	}
	return gross.Div(decimal.NewFromInt(int64(days))).Round(2)
}

// buildTopLocations agrupa las órdenes a domicilio por zona de entrega. La
// llave de zona es lo que precede a la primera coma de la dirección (o los
// primeros 30 caracteres si no hay coma), plegada para que variantes con
// tildes o mayúsculas caigan en el mismo grupo. Devuelve el top 10 por
// conteo descendente.
func buildTopLocations(orders []entity.Order) []dto.DeliveryLocationDTO {
	type locAcc struct {
		display string
		count   int
	}
	byKey := make(map[string]*locAcc)

	for _, o := range orders {
		if o.DeliveryType != entity.DeliveryTypeDelivery {
			continue
		}
		display := locationKey(o.Address)
		if display == "" {
			continue
		}
		key := normalize.Fold(display)
		a := byKey[key]
		if a == nil {
			a = &locAcc{display: display}
			byKey[key] = a
		}
		a.count++
	}

	locations := make([]dto.DeliveryLocationDTO, 0, len(byKey))
	for _, a := range byKey {
		locations = append(locations, dto.DeliveryLocationDTO{Location: a.display, Count: a.count})
	}
	sort.Slice(locations, func(i, j int) bool {
		if locations[i].Count != locations[j].Count {
			return locations[i].Count > locations[j].Count
		}
		return locations[i].Location < locations[j].Location
	})
	if len(locations) > topLocations {
		locations = locations[:topLocations]
	}
	return locations
}

// locationKey extrae la zona de entrega de una dirección.
func locationKey(address string) string {
	address = strings.TrimSpace(address)
	if address == "" {
		return ""
	}
	if idx := strings.Index(address, ","); idx >= 0 {
		return strings.TrimSpace(address[:idx])
	}
	if runes := []rune(address); len(runes) > locationKeyMaxLen {
		return strings.TrimSpace(string(runes[:locationKeyMaxLen]))
	}
	return address
}
