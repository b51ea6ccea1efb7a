package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"gonum.org/v1/gonum/mat"

	"github.com/star/astrokit/eop"
	"github.com/star/astrokit/frames"
	"github.com/star/astrokit/internal/gridder"
	"github.com/star/astrokit/internal/metrics"
	"github.com/star/astrokit/timescales"
)

// maxGridSamples bounds the CPU a single grid request can consume.
const maxGridSamples = 10000

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

// parseEpoch resolves a timestamp and scale name to an instant. UTC goes
// through the leap-second-aware parser and lands on TAI.
func (s *Server) parseEpoch(value, scale string) (timescales.Time, error) {
	if scale == "UTC" {
		utc, err := timescales.ParseUTC(value)
		if err != nil {
			return timescales.Time{}, err
		}
		return utc.ToTAI(s.leaps)
	}
	parsed, err := timescales.ParseScale(scale)
	if err != nil {
		return timescales.Time{}, err
	}
	return timescales.ParseISO(parsed, value)
}

// transformProvider returns the scale-offset provider for the loaded EOP
// dataset, or the EOP-free default when none is loaded.
func (s *Server) transformProvider() timescales.TransformProvider {
	if ds := s.store.Get(); ds != nil {
		return eop.NewProvider(ds.Series)
	}
	return timescales.DefaultProvider{}
}

type convertTimeRequest struct {
	Time string `json:"time"`
	From string `json:"from"`
	To   string `json:"to"`
}

type convertTimeResponse struct {
	Time         string   `json:"time"`
	Scale        string   `json:"scale"`
	JulianDate   *float64 `json:"julian_date,omitempty"`
	Extrapolated bool     `json:"extrapolated,omitempty"`
}

func (s *Server) convertTimeHandler(w http.ResponseWriter, r *http.Request) {
	var req convertTimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	in, err := s.parseEpoch(req.Time, req.From)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp := convertTimeResponse{Scale: req.To}
	if req.To == "UTC" {
		tai, err := in.ToScale(timescales.TAI, s.transformProvider())
		if err != nil && !isExtrapolation(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		resp.Extrapolated = err != nil
		utc, err := timescales.UtcFromTAI(tai, s.leaps)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		resp.Time = utc.String()
		writeJSON(w, http.StatusOK, resp)
		return
	}

	target, err := timescales.ParseScale(req.To)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	out, err := in.ToScale(target, s.transformProvider())
	if err != nil && !isExtrapolation(err) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	resp.Extrapolated = err != nil
	resp.Time = out.String()
	jd := out.JulianDate(timescales.EpochJD, timescales.UnitDays)
	resp.JulianDate = &jd
	writeJSON(w, http.StatusOK, resp)
}

func isExtrapolation(err error) bool {
	var extrap timescales.ErrExtrapolatedDeltaUT1TAI
	return errors.As(err, &extrap)
}

type rotateRequest struct {
	Epoch    string     `json:"epoch"`
	Scale    string     `json:"scale"`
	From     string     `json:"from"`
	To       string     `json:"to"`
	Position [3]float64 `json:"position"`
	Velocity [3]float64 `json:"velocity"`
}

type rotateResponse struct {
	Position   [3]float64    `json:"position"`
	Velocity   [3]float64    `json:"velocity"`
	Matrix     [3][3]float64 `json:"matrix"`
	Derivative [3][3]float64 `json:"derivative"`
}

func (s *Server) rotateHandler(w http.ResponseWriter, r *http.Request) {
	var req rotateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	epoch, from, to, ok := s.resolveRotation(w, req.Epoch, req.Scale, req.From, req.To)
	if !ok {
		return
	}

	rot, err := s.provider().Rotation(from, to, epoch)
	if err != nil {
		writeError(w, rotationStatus(err), err.Error())
		return
	}

	var resp rotateResponse
	resp.Position, resp.Velocity = rot.Apply(req.Position, req.Velocity)
	resp.Matrix = matrix3(rot.Matrix())
	resp.Derivative = matrix3(rot.Derivative())
	writeJSON(w, http.StatusOK, resp)
}

type gridRequest struct {
	Epoch       string  `json:"epoch"`
	Scale       string  `json:"scale"`
	From        string  `json:"from"`
	To          string  `json:"to"`
	StepSeconds float64 `json:"step_seconds"`
	Count       int     `json:"count"`
}

type gridSample struct {
	Epoch      string        `json:"epoch"`
	Matrix     [3][3]float64 `json:"matrix"`
	Derivative [3][3]float64 `json:"derivative"`
}

type gridResponse struct {
	Samples []gridSample `json:"samples"`
	Ok      int          `json:"ok"`
	Failed  int          `json:"failed"`
}

func (s *Server) gridHandler(w http.ResponseWriter, r *http.Request) {
	var req gridRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if req.Count < 1 || req.StepSeconds <= 0 {
		writeError(w, http.StatusBadRequest, "count and step_seconds must be positive")
		return
	}
	if req.Count > maxGridSamples {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":       fmt.Sprintf("count %d exceeds the sample budget", req.Count),
			"max_samples": maxGridSamples,
		})
		return
	}

	epoch, from, to, ok := s.resolveRotation(w, req.Epoch, req.Scale, req.From, req.To)
	if !ok {
		return
	}
	step, err := timescales.DeltaFromDecimalSeconds(req.StepSeconds)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	samples, okCount, failed := s.pool.SampleGrid(r.Context(), s.provider(), gridder.Request{
		From:  from,
		To:    to,
		Start: epoch,
		Step:  step,
		Count: req.Count,
	})
	metrics.AddGridSamples(okCount, failed)

	resp := gridResponse{Samples: make([]gridSample, len(samples)), Ok: okCount, Failed: failed}
	for i, sm := range samples {
		resp.Samples[i] = gridSample{
			Epoch:      sm.Epoch.String(),
			Matrix:     sm.Matrix,
			Derivative: sm.Derivative,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// resolveRotation parses the shared epoch/frame fields of the rotation
// endpoints, writing the error response itself on failure.
func (s *Server) resolveRotation(w http.ResponseWriter, epochStr, scale, fromStr, toStr string) (timescales.Time, frames.Frame, frames.Frame, bool) {
	epoch, err := s.parseEpoch(epochStr, scale)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return timescales.Time{}, frames.Frame{}, frames.Frame{}, false
	}
	from, err := frames.ParseFrame(fromStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return timescales.Time{}, frames.Frame{}, frames.Frame{}, false
	}
	to, err := frames.ParseFrame(toStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return timescales.Time{}, frames.Frame{}, frames.Frame{}, false
	}
	return epoch, from, to, true
}

// rotationStatus maps rotation failures to HTTP codes: a missing EOP
// dataset is a service condition, everything else is the request's fault.
func rotationStatus(err error) int {
	if errors.Is(err, timescales.ErrMissingEOPProvider) || errors.Is(err, frames.ErrMissingEOP) {
		return http.StatusServiceUnavailable
	}
	return http.StatusBadRequest
}

func matrix3(m *mat.Dense) [3][3]float64 {
	var out [3][3]float64
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[r][c] = m.At(r, c)
		}
	}
	return out
}
