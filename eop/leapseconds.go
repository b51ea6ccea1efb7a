// Package eop supplies Earth-orientation reference data to the time and
// frame packages: the leap-second table, tabulated UT1−TAI offsets, polar
// motion, and nutation corrections from IERS finals-style series.
//
// All data types are immutable after construction and safe for concurrent
// reads. The fetcher/cache/store trio keeps a current series available to
// long-running processes without locking readers.
package eop

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/star/astrokit/timescales"
)

// LeapSecondTable is an immutable leap-second table implementing
// timescales.LeapSecondSource.
type LeapSecondTable struct {
	entries []timescales.LeapSecond
}

// LeapSeconds returns the table entries in ascending date order.
func (t *LeapSecondTable) LeapSeconds() []timescales.LeapSecond {
	return t.entries
}

// builtinLeapSeconds lists the integer TAI−UTC offsets effective since
// 1972-01-01, per the IERS Bulletin C series through 2017.
var builtinLeapSeconds = []struct {
	year   int64
	month  int
	offset int64
}{
	{1972, 1, 10},
	{1972, 7, 11},
	{1973, 1, 12},
	{1974, 1, 13},
	{1975, 1, 14},
	{1976, 1, 15},
	{1977, 1, 16},
	{1978, 1, 17},
	{1979, 1, 18},
	{1980, 1, 19},
	{1981, 7, 20},
	{1982, 7, 21},
	{1983, 7, 22},
	{1985, 7, 23},
	{1988, 1, 24},
	{1990, 1, 25},
	{1991, 1, 26},
	{1992, 7, 27},
	{1993, 7, 28},
	{1994, 7, 29},
	{1996, 1, 30},
	{1997, 7, 31},
	{1999, 1, 32},
	{2006, 1, 33},
	{2009, 1, 34},
	{2012, 7, 35},
	{2015, 7, 36},
	{2017, 1, 37},
}

// BuiltinLeapSeconds returns the compiled-in leap-second table.
func BuiltinLeapSeconds() *LeapSecondTable {
	entries := make([]timescales.LeapSecond, len(builtinLeapSeconds))
	for i, e := range builtinLeapSeconds {
		date, err := timescales.NewDate(e.year, e.month, 1)
		if err != nil {
			// The builtin table only holds valid first-of-month dates.
			panic(err)
		}
		entries[i] = timescales.LeapSecond{Date: date, TaiMinusUtc: e.offset}
	}
	return &LeapSecondTable{entries: entries}
}

// ParseLeapSeconds reads a leap-second table with one "YYYY-MM-DD,offset"
// record per line. Blank lines and lines starting with '#' are skipped.
// Records must be in ascending date order.
func ParseLeapSeconds(r io.Reader) (*LeapSecondTable, error) {
	scanner := bufio.NewScanner(r)
	var entries []timescales.LeapSecond
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		dateStr, offsetStr, found := strings.Cut(line, ",")
		if !found {
			return nil, fmt.Errorf("line %d: expected \"date,offset\", got %q", lineNo, line)
		}
		date, err := parseDate(strings.TrimSpace(dateStr))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		offset, err := strconv.ParseInt(strings.TrimSpace(offsetStr), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid offset %q", lineNo, offsetStr)
		}
		if n := len(entries); n > 0 && entries[n-1].Date.DaysSinceJ2000() >= date.DaysSinceJ2000() {
			return nil, fmt.Errorf("line %d: dates out of order at %s", lineNo, date)
		}
		entries = append(entries, timescales.LeapSecond{Date: date, TaiMinusUtc: offset})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading leap second table: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("leap second table is empty")
	}
	return &LeapSecondTable{entries: entries}, nil
}

func parseDate(s string) (timescales.Date, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return timescales.Date{}, fmt.Errorf("invalid date %q", s)
	}
	year, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return timescales.Date{}, fmt.Errorf("invalid year in %q", s)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return timescales.Date{}, fmt.Errorf("invalid month in %q", s)
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return timescales.Date{}, fmt.Errorf("invalid day in %q", s)
	}
	return timescales.NewDate(year, month, day)
}
