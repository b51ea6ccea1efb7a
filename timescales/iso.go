package timescales

import (
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidISO reports a string that does not match the supported
// ISO-8601 profile.
type ErrInvalidISO struct {
	Input  string
	Detail string
}

func (e ErrInvalidISO) Error() string {
	return fmt.Sprintf("invalid ISO-8601 timestamp %q: %s", e.Input, e.Detail)
}

// ParseISO parses "YYYY-MM-DDTHH:MM:SS[.fff][ ABBR]" in the given scale.
// The dashes and colons may be omitted. When the string carries a scale
// abbreviation it must match the requested scale.
func ParseISO(scale TimeScale, s string) (Time, error) {
	s = strings.TrimSpace(s)

	// Optional trailing scale abbreviation.
	if idx := strings.LastIndexByte(s, ' '); idx >= 0 {
		tag := s[idx+1:]
		parsed, err := ParseScale(tag)
		if err != nil {
			return Time{}, err
		}
		if parsed != scale {
			return Time{}, ErrInvalidISO{Input: s, Detail: fmt.Sprintf("scale %s does not match requested %s", parsed, scale)}
		}
		s = strings.TrimSpace(s[:idx])
	}

	datePart, timePart, found := strings.Cut(s, "T")
	if !found {
		return Time{}, ErrInvalidISO{Input: s, Detail: "missing 'T' separator"}
	}

	year, month, day, err := parseISODate(datePart)
	if err != nil {
		return Time{}, ErrInvalidISO{Input: s, Detail: err.Error()}
	}
	hour, minute, seconds, err := parseISOTime(timePart)
	if err != nil {
		return Time{}, ErrInvalidISO{Input: s, Detail: err.Error()}
	}

	return NewBuilder(scale).YMD(year, month, day).HMS(hour, minute, seconds).Build()
}

func parseISODate(s string) (year int64, month, day int, err error) {
	var parts [3]string
	if strings.Contains(s, "-") && !strings.HasPrefix(s, "-") {
		split := strings.Split(s, "-")
		if len(split) != 3 {
			return 0, 0, 0, fmt.Errorf("malformed date %q", s)
		}
		copy(parts[:], split)
	} else if len(s) == 8 {
		parts[0], parts[1], parts[2] = s[:4], s[4:6], s[6:8]
	} else {
		return 0, 0, 0, fmt.Errorf("malformed date %q", s)
	}

	year, err = strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid year %q", parts[0])
	}
	month, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid month %q", parts[1])
	}
	day, err = strconv.Atoi(parts[2])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid day %q", parts[2])
	}
	return year, month, day, nil
}

func parseISOTime(s string) (hour, minute int, seconds float64, err error) {
	var hh, mm, ss string
	if strings.Contains(s, ":") {
		split := strings.Split(s, ":")
		if len(split) != 3 {
			return 0, 0, 0, fmt.Errorf("malformed time %q", s)
		}
		hh, mm, ss = split[0], split[1], split[2]
	} else if len(s) >= 6 {
		hh, mm, ss = s[:2], s[2:4], s[4:]
	} else {
		return 0, 0, 0, fmt.Errorf("malformed time %q", s)
	}

	hour, err = strconv.Atoi(hh)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid hour %q", hh)
	}
	minute, err = strconv.Atoi(mm)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid minute %q", mm)
	}
	seconds, err = strconv.ParseFloat(ss, 64)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid seconds %q", ss)
	}
	return hour, minute, seconds, nil
}
