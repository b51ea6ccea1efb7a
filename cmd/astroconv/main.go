// Command astroconv is a one-shot conversion tool: time-scale and Julian
// date conversion, and frame rotation of a state vector.
//
// Usage:
//
//	astroconv time -from TAI -to TT 2024-03-01T12:00:00
//	astroconv rotate -from ICRF -to "IAU Mars" -epoch 2024-03-01T12:00:00 \
//	    -pos 7000e3,0,0 -vel 0,7.5e3,0
//
// An IERS finals CSV given with -eop enables UT1 and the Earth-fixed
// frames.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/star/astrokit/eop"
	"github.com/star/astrokit/frames"
	"github.com/star/astrokit/timescales"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "time":
		err = runTime(os.Args[2:])
	case "rotate":
		err = runRotate(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "ERROR:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: astroconv <time|rotate> [flags] ...")
}

// loadSeries parses a finals CSV when a path is given.
func loadSeries(path string) (*eop.Series, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	return eop.ParseFinals(f, eop.BuiltinLeapSeconds(), logger)
}

func parseEpoch(value, scale string) (timescales.Time, error) {
	if scale == "UTC" {
		utc, err := timescales.ParseUTC(value)
		if err != nil {
			return timescales.Time{}, err
		}
		return utc.ToTAI(eop.BuiltinLeapSeconds())
	}
	parsed, err := timescales.ParseScale(scale)
	if err != nil {
		return timescales.Time{}, err
	}
	return timescales.ParseISO(parsed, value)
}

func runTime(args []string) error {
	fs := flag.NewFlagSet("time", flag.ExitOnError)
	from := fs.String("from", "TAI", "input scale (TAI, TT, TCG, TCB, TDB, UT1, UTC)")
	to := fs.String("to", "TT", "output scale")
	eopPath := fs.String("eop", "", "IERS finals CSV for UT1 conversions")
	fs.Parse(args)
	if fs.NArg() != 1 {
		return fmt.Errorf("time: expected one timestamp argument")
	}

	in, err := parseEpoch(fs.Arg(0), *from)
	if err != nil {
		return err
	}
	series, err := loadSeries(*eopPath)
	if err != nil {
		return err
	}
	var provider timescales.TransformProvider = timescales.DefaultProvider{}
	if series != nil {
		provider = eop.NewProvider(series)
	}

	if *to == "UTC" {
		tai, err := in.ToScale(timescales.TAI, provider)
		if err != nil && !isExtrapolation(err) {
			return err
		}
		utc, err := timescales.UtcFromTAI(tai, eop.BuiltinLeapSeconds())
		if err != nil {
			return err
		}
		fmt.Println(utc)
		return nil
	}

	target, err := timescales.ParseScale(*to)
	if err != nil {
		return err
	}
	out, err := in.ToScale(target, provider)
	if err != nil {
		if !isExtrapolation(err) {
			return err
		}
		fmt.Fprintln(os.Stderr, "WARNING:", err)
	}
	fmt.Println(out)
	fmt.Printf("JD  %.9f\n", out.JulianDate(timescales.EpochJD, timescales.UnitDays))
	fmt.Printf("MJD %.9f\n", out.JulianDate(timescales.EpochMJD, timescales.UnitDays))
	return nil
}

func runRotate(args []string) error {
	fs := flag.NewFlagSet("rotate", flag.ExitOnError)
	fromName := fs.String("from", "ICRF", "source frame")
	toName := fs.String("to", "ITRF", "target frame")
	epochStr := fs.String("epoch", "", "epoch timestamp")
	scale := fs.String("scale", "TAI", "epoch time scale")
	posStr := fs.String("pos", "0,0,0", "position vector, metres, comma separated")
	velStr := fs.String("vel", "0,0,0", "velocity vector, m/s, comma separated")
	system := fs.String("system", "IERS2010", "IERS conventions for the Earth chain")
	eopPath := fs.String("eop", "", "IERS finals CSV for Earth-fixed frames")
	fs.Parse(args)

	epoch, err := parseEpoch(*epochStr, *scale)
	if err != nil {
		return err
	}
	from, err := frames.ParseFrame(*fromName)
	if err != nil {
		return err
	}
	to, err := frames.ParseFrame(*toName)
	if err != nil {
		return err
	}
	pos, err := parseVec(*posStr)
	if err != nil {
		return fmt.Errorf("-pos: %w", err)
	}
	vel, err := parseVec(*velStr)
	if err != nil {
		return fmt.Errorf("-vel: %w", err)
	}
	sys, err := frames.ParseReferenceSystem(*system)
	if err != nil {
		return err
	}
	series, err := loadSeries(*eopPath)
	if err != nil {
		return err
	}

	rot, err := frames.NewProvider(sys, series).Rotation(from, to, epoch)
	if err != nil {
		return err
	}
	outPos, outVel := rot.Apply(pos, vel)
	fmt.Printf("position  %.6f %.6f %.6f\n", outPos[0], outPos[1], outPos[2])
	fmt.Printf("velocity  %.9f %.9f %.9f\n", outVel[0], outVel[1], outVel[2])
	return nil
}

func parseVec(s string) ([3]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return [3]float64{}, fmt.Errorf("expected three components, got %q", s)
	}
	var v [3]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return [3]float64{}, fmt.Errorf("invalid component %q", p)
		}
		v[i] = f
	}
	return v, nil
}

func isExtrapolation(err error) bool {
	var extrap timescales.ErrExtrapolatedDeltaUT1TAI
	return errors.As(err, &extrap)
}
