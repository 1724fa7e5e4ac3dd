package analytics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Tienda-api/internal/application/analytics"
)

// ──────────────────────────────────────────────────────────────────────────────
// Resolución de rangos de fecha
//
// Todos los casos usan un "ahora" fijo para que los tests sean deterministas:
// viernes 15 de agosto de 2026, 14:30 UTC.
// ──────────────────────────────────────────────────────────────────────────────

var fixedNow = time.Date(2026, time.August, 15, 14, 30, 0, 0, time.UTC)

func TestResolveDateRange_Today(t *testing.T) {
	rng := analytics.ResolveDateRange(analytics.RangeToday, "", "", fixedNow)
	require.True(t, rng.Bounded(), "today debe resolver a un intervalo concreto")

	assert.Equal(t, time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC), *rng.Start,
		"el inicio debe ser la medianoche de hoy")
	assert.Equal(t, time.Date(2026, time.August, 15, 23, 59, 59, 999000000, time.UTC), *rng.End,
		"el fin debe ser el último milisegundo de hoy")
}

func TestResolveDateRange_Week(t *testing.T) {
	rng := analytics.ResolveDateRange(analytics.RangeWeek, "", "", fixedNow)
	require.True(t, rng.Bounded())

	assert.Equal(t, time.Date(2026, time.August, 8, 0, 0, 0, 0, time.UTC), *rng.Start,
		"la semana es móvil: 7 días atrás al inicio del día")
	assert.Equal(t, fixedNow, *rng.End, "el fin de la semana móvil es ahora")
}

func TestResolveDateRange_30Days(t *testing.T) {
	rng := analytics.ResolveDateRange(analytics.Range30Days, "", "", fixedNow)
	require.True(t, rng.Bounded())

	assert.Equal(t, time.Date(2026, time.July, 16, 0, 0, 0, 0, time.UTC), *rng.Start)
	assert.Equal(t, fixedNow, *rng.End)
}

func TestResolveDateRange_Month(t *testing.T) {
	rng := analytics.ResolveDateRange(analytics.RangeMonth, "", "", fixedNow)
	require.True(t, rng.Bounded())

	assert.Equal(t, time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC), *rng.Start,
		"month es el mes calendario, no una ventana móvil")
	assert.Equal(t, time.Date(2026, time.August, 31, 23, 59, 59, 999000000, time.UTC), *rng.End)
}

func TestResolveDateRange_Quarter(t *testing.T) {
	rng := analytics.ResolveDateRange(analytics.RangeQuarter, "", "", fixedNow)
	require.True(t, rng.Bounded())

	// Agosto cae en el tercer trimestre: julio–septiembre.
	assert.Equal(t, time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC), *rng.Start)
	assert.Equal(t, time.Date(2026, time.September, 30, 23, 59, 59, 999000000, time.UTC), *rng.End)
}

func TestResolveDateRange_Year(t *testing.T) {
	rng := analytics.ResolveDateRange(analytics.RangeYear, "", "", fixedNow)
	require.True(t, rng.Bounded())

	assert.Equal(t, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), *rng.Start)
	assert.Equal(t, time.Date(2026, time.December, 31, 23, 59, 59, 999000000, time.UTC), *rng.End)
}

func TestResolveDateRange_CustomValido(t *testing.T) {
	rng := analytics.ResolveDateRange(analytics.RangeCustom, "2026-08-01", "2026-08-10", fixedNow)
	require.True(t, rng.Bounded())

	assert.Equal(t, time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC), *rng.Start)
	assert.Equal(t, time.Date(2026, time.August, 10, 23, 59, 59, 999000000, time.UTC), *rng.End,
		"la fecha final custom es inclusiva hasta el fin del día")
}

// Fechas custom malformadas no levantan error: cada límite inválido cae a su
// valor por defecto (30 días atrás / ahora).
func TestResolveDateRange_CustomMalformado_UsaDefaults(t *testing.T) {
	rng := analytics.ResolveDateRange(analytics.RangeCustom, "15/08/2026", "no-es-fecha", fixedNow)
	require.True(t, rng.Bounded())

	assert.Equal(t, time.Date(2026, time.July, 16, 0, 0, 0, 0, time.UTC), *rng.Start,
		"inicio malformado debe caer a 30 días atrás")
	assert.Equal(t, fixedNow, *rng.End, "fin malformado debe caer a ahora")
}

func TestResolveDateRange_CustomParcial(t *testing.T) {
	rng := analytics.ResolveDateRange(analytics.RangeCustom, "2026-08-05", "", fixedNow)
	require.True(t, rng.Bounded())

	assert.Equal(t, time.Date(2026, time.August, 5, 0, 0, 0, 0, time.UTC), *rng.Start)
	assert.Equal(t, fixedNow, *rng.End, "sin fecha final el rango llega hasta ahora")
}

func TestResolveDateRange_AllYDesconocido_SinFiltro(t *testing.T) {
	for _, selector := range []string{analytics.RangeAll, "", "mes-pasado"} {
		rng := analytics.ResolveDateRange(selector, "", "", fixedNow)
		assert.False(t, rng.Bounded(), "selector %q no debe aplicar filtro de fechas", selector)
		assert.Nil(t, rng.Start)
		assert.Nil(t, rng.End)
	}
}

func TestWindowDays(t *testing.T) {
	rng := analytics.ResolveDateRange(analytics.RangeWeek, "", "", fixedNow)
	assert.Equal(t, 8, rng.WindowDays(), "7 días más la fracción del día actual redondea a 8")

	today := analytics.ResolveDateRange(analytics.RangeToday, "", "", fixedNow)
	assert.Equal(t, 1, today.WindowDays(), "today es una ventana de 1 día")

	all := analytics.ResolveDateRange(analytics.RangeAll, "", "", fixedNow)
	assert.Equal(t, 0, all.WindowDays(), "rango sin límites no tiene ventana")
}

// ──────────────────────────────────────────────────────────────────────────────
// Rango de comparación (período anterior equivalente)
// ──────────────────────────────────────────────────────────────────────────────

func TestResolveComparisonRange_Week(t *testing.T) {
	rng, ok := analytics.ResolveComparisonRange(analytics.CompareWeek, fixedNow)
	require.True(t, ok)

	assert.Equal(t, time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC), *rng.Start,
		"la semana anterior empieza 14 días atrás")
	assert.Equal(t, time.Date(2026, time.August, 7, 23, 59, 59, 999000000, time.UTC), *rng.End,
		"la semana anterior termina justo antes de la ventana actual")
}

func TestResolveComparisonRange_Month(t *testing.T) {
	rng, ok := analytics.ResolveComparisonRange(analytics.CompareMonth, fixedNow)
	require.True(t, ok)

	assert.Equal(t, time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC), *rng.Start)
	assert.Equal(t, time.Date(2026, time.July, 31, 23, 59, 59, 999000000, time.UTC), *rng.End)
}

func TestResolveComparisonRange_Year(t *testing.T) {
	rng, ok := analytics.ResolveComparisonRange(analytics.CompareYear, fixedNow)
	require.True(t, ok)

	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), *rng.Start)
	assert.Equal(t, time.Date(2025, time.December, 31, 23, 59, 59, 999000000, time.UTC), *rng.End)
}

func TestResolveComparisonRange_ModoDesconocido(t *testing.T) {
	for _, mode := range []string{"", "custom", "quarter"} {
		_, ok := analytics.ResolveComparisonRange(mode, fixedNow)
		assert.False(t, ok, "el modo %q no debe generar comparación", mode)
	}
}
