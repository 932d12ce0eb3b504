package fecha

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizar(t *testing.T) {
	f, err := Normalizar("2024-06-04")
	require.NoError(t, err)
	assert.Equal(t, "2024-06-04", f)

	// Timestamps from older clients get truncated to their date part
	f, err = Normalizar("2024-06-04T18:30:00.000Z")
	require.NoError(t, err)
	assert.Equal(t, "2024-06-04", f)

	f, err = Normalizar("  2024-12-31 ")
	require.NoError(t, err)
	assert.Equal(t, "2024-12-31", f)

	_, err = Normalizar("04/06/2024")
	assert.Error(t, err)

	_, err = Normalizar("")
	assert.Error(t, err)
}

func TestEsPosteriorAHoy(t *testing.T) {
	// 2024-06-03 23:50 local — near-midnight must not shift the day
	now := time.Date(2024, 6, 3, 23, 50, 0, 0, time.Local)

	assert.False(t, EsPosteriorAHoy("2024-06-03", now), "same day is not allowed")
	assert.False(t, EsPosteriorAHoy("2024-06-02", now))
	assert.True(t, EsPosteriorAHoy("2024-06-04", now), "tomorrow is the minimum")
}

func TestDiaRecoleccion(t *testing.T) {
	// 2024-06-04 is a Tuesday, 2024-06-06 a Thursday
	assert.Equal(t, DiaMartes, DiaRecoleccion("2024-06-04"))
	assert.Equal(t, DiaJueves, DiaRecoleccion("2024-06-06"))
	assert.Equal(t, "", DiaRecoleccion("2024-06-05"), "wednesday has no pickup")
	assert.Equal(t, "", DiaRecoleccion("not-a-date"))
}

func TestProximosDiasRecoleccion(t *testing.T) {
	// Monday 2024-06-03 → tue 04, thu 06, tue 11, thu 13
	desde := time.Date(2024, 6, 3, 12, 0, 0, 0, time.Local)
	fechas := ProximosDiasRecoleccion(desde, 4)
	assert.Equal(t, []string{"2024-06-04", "2024-06-06", "2024-06-11", "2024-06-13"}, fechas)

	// Starting on a Tuesday: that same day is excluded (strictly after)
	desde = time.Date(2024, 6, 4, 8, 0, 0, 0, time.Local)
	fechas = ProximosDiasRecoleccion(desde, 2)
	assert.Equal(t, []string{"2024-06-06", "2024-06-11"}, fechas)
}
