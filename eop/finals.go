package eop

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/star/astrokit/timescales"
)

// Column names of the IERS finals CSV distribution that the parser
// consumes.
const (
	colMJD    = "MJD"
	colXPole  = "x_pole"
	colYPole  = "y_pole"
	colUT1UTC = "UT1-UTC"
	colDPsi   = "dPsi"
	colDEps   = "dEpsilon"
	colDX     = "dX"
	colDY     = "dY"
)

// ParseFinals reads an IERS finals-style CSV (semicolon separated, header
// row naming the columns) and produces an EOP series. Rows without a UT1
// value (the unpredicted tail of the file) are skipped with a warning.
//
// The file tabulates UT1−UTC against UTC days; both are rebased to TAI
// with the leap-second table so that the series is continuous.
func ParseFinals(r io.Reader, leapSeconds timescales.LeapSecondSource, logger *slog.Logger) (*Series, error) {
	reader := csv.NewReader(r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading finals header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{colMJD, colUT1UTC} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("finals file is missing column %q", required)
		}
	}

	entries := leapSeconds.LeapSeconds()

	var samples []Sample
	var skipped int
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("reading finals line %d: %w", line, err)
		}

		field := func(name string) string {
			idx, ok := cols[name]
			if !ok || idx >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[idx])
		}

		mjdUTC, err := strconv.ParseFloat(field(colMJD), 64)
		if err != nil {
			logger.Warn("skipping finals row with invalid MJD", "line", line, "mjd", field(colMJD))
			skipped++
			continue
		}
		ut1utcStr := field(colUT1UTC)
		if ut1utcStr == "" {
			// Unpredicted tail of the file.
			skipped++
			continue
		}
		ut1utc, err := strconv.ParseFloat(ut1utcStr, 64)
		if err != nil {
			logger.Warn("skipping finals row with invalid UT1-UTC", "line", line, "value", ut1utcStr)
			skipped++
			continue
		}

		taiUtc := taiMinusUtcAtMJD(entries, mjdUTC)

		sample := Sample{
			MJD:      mjdUTC + float64(taiUtc)/timescales.SecondsPerDay,
			DUT1:     ut1utc - float64(taiUtc),
			Xp:       optionalFloat(field(colXPole)),
			Yp:       optionalFloat(field(colYPole)),
			DPsi1980: optionalFloat(field(colDPsi)) / 1e3,
			DEps1980: optionalFloat(field(colDEps)) / 1e3,
			DX2000:   optionalFloat(field(colDX)) / 1e3,
			DY2000:   optionalFloat(field(colDY)) / 1e3,
		}
		samples = append(samples, sample)
	}

	if skipped > 0 {
		logger.Info("parsed finals file", "samples", len(samples), "skipped", skipped)
	}
	return NewSeries(samples)
}

// optionalFloat parses a possibly empty numeric field, returning 0 when it
// is absent.
func optionalFloat(s string) float64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// taiMinusUtcAtMJD looks up the integer TAI−UTC offset in effect at a UTC
// Modified Julian Date.
func taiMinusUtcAtMJD(entries []timescales.LeapSecond, mjdUTC float64) int64 {
	// MJD 51544 is 2000-01-01; day serials in the table are J2000-based.
	serial := int64(mjdUTC) - 51544
	var offset int64
	for _, e := range entries {
		if e.Date.DaysSinceJ2000() <= serial {
			offset = e.TaiMinusUtc
		} else {
			break
		}
	}
	return offset
}
