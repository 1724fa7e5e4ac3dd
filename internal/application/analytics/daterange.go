// Package analytics contiene el motor de analítica de la tienda: resolución
// de rangos de fecha, rendimiento por producto, riesgo de inventario,
// tendencias de venta, insights de órdenes, comparación de períodos y detalle
// por categoría. Todos los valores derivados se calculan por petición y no se
// cachean.
package analytics

import (
	"math"
	"time"
)

// Selectores de rango de fecha soportados por el reporte avanzado.
const (
	RangeToday   = "today"
	RangeWeek    = "week"
	RangeMonth   = "month"
	Range30Days  = "30days"
	RangeQuarter = "quarter"
	RangeYear    = "year"
	RangeCustom  = "custom"
	RangeAll     = "all"
)

// Modos de comparación contra el período anterior equivalente.
const (
	CompareWeek  = "week"
	CompareMonth = "month"
	CompareYear  = "year"
)

const customDateLayout = "2006-01-02"

// DateRange intervalo [Start, End] aplicado a las consultas. Ambos límites en
// nil significa "sin filtro" (selector all).
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// Bounded indica si el rango resolvió a un intervalo concreto.
func (r DateRange) Bounded() bool {
	return r.Start != nil && r.End != nil
}

// WindowDays devuelve los días del intervalo, redondeados hacia arriba y
// nunca menores a 1. Para un rango sin límites devuelve 0.
func (r DateRange) WindowDays() int {
	if !r.Bounded() {
		return 0
	}
	days := int(math.Ceil(r.End.Sub(*r.Start).Hours() / 24))
	if days < 1 {
		days = 1
	}
	return days
}

// ResolveDateRange convierte el selector (y los límites custom opcionales) en
// un intervalo concreto. Fechas custom malformadas no levantan error: caen al
// intervalo por defecto (30 días hacia atrás / ahora).
func ResolveDateRange(selector, customStart, customEnd string, now time.Time) DateRange {
	switch selector {
	case RangeToday:
		start := startOfDay(now)
		end := start.Add(24*time.Hour - time.Millisecond)
		return rangeOf(start, end)

	case RangeWeek:
		return rangeOf(startOfDay(now.AddDate(0, 0, -7)), now)

	case Range30Days:
		return rangeOf(startOfDay(now.AddDate(0, 0, -30)), now)

	case RangeMonth:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		end := start.AddDate(0, 1, 0).Add(-time.Millisecond)
		return rangeOf(start, end)

	case RangeQuarter:
		q := (int(now.Month()) - 1) / 3
		start := time.Date(now.Year(), time.Month(q*3+1), 1, 0, 0, 0, 0, now.Location())
		end := start.AddDate(0, 3, 0).Add(-time.Millisecond)
		return rangeOf(start, end)

	case RangeYear:
		start := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
		end := time.Date(now.Year(), 12, 31, 23, 59, 59, 999000000, now.Location())
		return rangeOf(start, end)

	case RangeCustom:
		start := startOfDay(now.AddDate(0, 0, -30))
		if t, err := time.ParseInLocation(customDateLayout, customStart, now.Location()); err == nil {
			start = t
		}
		end := now
		if t, err := time.ParseInLocation(customDateLayout, customEnd, now.Location()); err == nil {
			// inclusive hasta el final del día
			end = t.Add(24*time.Hour - time.Millisecond)
		}
		return rangeOf(start, end)

	default: // all, vacío o selector desconocido: sin filtro
		return DateRange{}
	}
}

// ResolveComparisonRange devuelve el período anterior equivalente al modo
// dado: la ventana de 7 días previa a la actual, el mes calendario anterior o
// el año calendario anterior. Modos desconocidos (incluido custom) no generan
// comparación.
func ResolveComparisonRange(mode string, now time.Time) (DateRange, bool) {
	switch mode {
	case CompareWeek:
		end := startOfDay(now.AddDate(0, 0, -7)).Add(-time.Millisecond)
		start := startOfDay(now.AddDate(0, 0, -14))
		return rangeOf(start, end), true

	case CompareMonth:
		firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		start := firstOfMonth.AddDate(0, -1, 0)
		end := firstOfMonth.Add(-time.Millisecond)
		return rangeOf(start, end), true

	case CompareYear:
		start := time.Date(now.Year()-1, 1, 1, 0, 0, 0, 0, now.Location())
		end := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location()).Add(-time.Millisecond)
		return rangeOf(start, end), true

	default:
		return DateRange{}, false
	}
}

func rangeOf(start, end time.Time) DateRange {
	return DateRange{Start: &start, End: &end}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
