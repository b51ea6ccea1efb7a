package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
)

// parsePCK reads the data blocks of a SPICE text kernel and returns the
// variable assignments. Only \begindata sections are scanned; everything
// else is kernel commentary. Malformed assignments are skipped with a
// warning log.
func parsePCK(r io.Reader, logger *slog.Logger) (map[string][]float64, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	vars := make(map[string][]float64)
	inData := false
	var pending strings.Builder
	lineNo := 0

	flush := func() {
		if pending.Len() == 0 {
			return
		}
		stmt := pending.String()
		pending.Reset()
		name, values, appendOp, err := parseAssignment(stmt)
		if err != nil {
			logger.Warn("skipping malformed kernel assignment", "line", lineNo, "error", err)
			return
		}
		if appendOp {
			vars[name] = append(vars[name], values...)
		} else {
			vars[name] = values
		}
	}

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case `\begindata`:
			flush()
			inData = true
			continue
		case `\begintext`:
			flush()
			inData = false
			continue
		}
		if !inData || line == "" {
			continue
		}
		// A statement starts at "NAME =" and runs until the next one.
		if strings.Contains(line, "=") && pending.Len() > 0 && balanced(pending.String()) {
			flush()
		}
		pending.WriteString(line)
		pending.WriteByte(' ')
		if balanced(pending.String()) && strings.Contains(pending.String(), "=") {
			flush()
		}
	}
	flush()
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading kernel: %w", err)
	}
	return vars, nil
}

// balanced reports whether every opened parenthesis is closed.
func balanced(s string) bool {
	depth := 0
	for _, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		}
	}
	return depth == 0
}

// parseAssignment splits "NAME = ( v1 v2 ... )" or "NAME += ( ... )" into
// its name and numeric values. Bare scalars without parentheses are
// accepted; string-valued kernel variables are rejected.
func parseAssignment(stmt string) (name string, values []float64, appendOp bool, err error) {
	lhs, rhs, found := strings.Cut(stmt, "=")
	if !found {
		return "", nil, false, fmt.Errorf("no assignment in %q", strings.TrimSpace(stmt))
	}
	lhs = strings.TrimSpace(lhs)
	if strings.HasSuffix(lhs, "+") {
		appendOp = true
		lhs = strings.TrimSpace(strings.TrimSuffix(lhs, "+"))
	}
	if lhs == "" {
		return "", nil, false, fmt.Errorf("empty variable name in %q", stmt)
	}

	rhs = strings.TrimSpace(rhs)
	rhs = strings.TrimPrefix(rhs, "(")
	rhs = strings.TrimSuffix(strings.TrimSpace(rhs), ")")

	for _, field := range strings.Fields(strings.ReplaceAll(rhs, ",", " ")) {
		v, err := parseKernelFloat(field)
		if err != nil {
			return "", nil, false, fmt.Errorf("variable %s: %w", lhs, err)
		}
		values = append(values, v)
	}
	return lhs, values, appendOp, nil
}

// parseKernelFloat parses a FORTRAN-style literal; kernels write
// exponents with D as well as E.
func parseKernelFloat(s string) (float64, error) {
	s = strings.ReplaceAll(strings.ReplaceAll(s, "D", "E"), "d", "e")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return v, nil
}
