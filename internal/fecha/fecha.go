// Package fecha centralizes calendar-date handling for the scheduler.
// Dates travel through the system as canonical "YYYY-MM-DD" strings and all
// comparisons happen on local year/month/day — never on UTC instants, so a
// booking made at 23:50 local time is not shifted to the wrong day.
package fecha

import (
	"strings"
	"time"
)

// Layout is the canonical wire and storage format.
const Layout = "2006-01-02"

// Weekday labels used for bodega pickups.
const (
	DiaMartes = "tuesday"
	DiaJueves = "thursday"
)

// Normalizar parses an incoming date string and returns it in canonical
// YYYY-MM-DD form. Inputs carrying a time component (RFC 3339 timestamps from
// older clients) are truncated to their date part.
func Normalizar(s string) (string, error) {
	s = strings.TrimSpace(s)
	if idx := strings.IndexByte(s, 'T'); idx > 0 {
		s = s[:idx]
	}
	t, err := time.ParseInLocation(Layout, s, time.Local)
	if err != nil {
		return "", err
	}
	return t.Format(Layout), nil
}

// Hoy returns today's local calendar date in canonical form.
func Hoy() string {
	return HoyEn(time.Now())
}

// HoyEn returns the local calendar date of the given instant.
func HoyEn(now time.Time) string {
	return now.In(time.Local).Format(Layout)
}

// EsPosteriorAHoy reports whether fecha (canonical form) falls strictly after
// the local calendar date of now. Canonical dates compare correctly as
// strings, so no further parsing is needed.
func EsPosteriorAHoy(fecha string, now time.Time) bool {
	return fecha > HoyEn(now)
}

// DiaRecoleccion returns the pickup-day label for a canonical date:
// "tuesday", "thursday", or "" for any other weekday (or unparseable input).
func DiaRecoleccion(fecha string) string {
	t, err := time.ParseInLocation(Layout, fecha, time.Local)
	if err != nil {
		return ""
	}
	switch t.Weekday() {
	case time.Tuesday:
		return DiaMartes
	case time.Thursday:
		return DiaJueves
	default:
		return ""
	}
}

// ProximosDiasRecoleccion enumerates the next n bodega pickup dates strictly
// after the local calendar date of desde.
func ProximosDiasRecoleccion(desde time.Time, n int) []string {
	fechas := make([]string, 0, n)
	d := desde.In(time.Local)
	for len(fechas) < n {
		d = d.AddDate(0, 0, 1)
		if wd := d.Weekday(); wd == time.Tuesday || wd == time.Thursday {
			fechas = append(fechas, d.Format(Layout))
		}
	}
	return fechas
}
