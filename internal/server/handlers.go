package server

import (
	"context"
	"net/http"
	"time"

	"github.com/matzehuels/luthier/pkg/buildinfo"
	"github.com/matzehuels/luthier/pkg/convert"
	"github.com/matzehuels/luthier/pkg/errors"
	"github.com/matzehuels/luthier/pkg/fretboard"
	"github.com/matzehuels/luthier/pkg/observability"
	"github.com/matzehuels/luthier/pkg/ruler"
	"github.com/matzehuels/luthier/pkg/spacing"
	"github.com/matzehuels/luthier/pkg/units"
)

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// rulerParams are the optional ruler overrides shared by convert and round.
type rulerParams struct {
	Finest *int64 `json:"finest,omitempty"`
	Snap   *bool  `json:"snap,omitempty"`
}

func (p rulerParams) options(base ruler.Options) ruler.Options {
	if p.Finest != nil {
		base.Finest = *p.Finest
		if base.Finest == 0 {
			// Zero would silently mean the default; reject it like any
			// other bad denominator.
			base.Finest = -1
		}
	}
	if p.Snap != nil {
		base.Policy = ruler.PolicyFallback
		if *p.Snap {
			base.Policy = ruler.PolicySnap
		}
	}
	return base
}

type parseRequest struct {
	Text string `json:"text"`
}

type convertRequest struct {
	Text string `json:"text"`
	rulerParams
}

type roundRequest struct {
	Value *float64 `json:"value"`
	rulerParams
}

type spacingRequest struct {
	NutWidth     float64   `json:"nut_width"`
	Gauges       []float64 `json:"gauges"`
	EdgeDistance *float64  `json:"edge_distance,omitempty"`
	EdgeFlush    *bool     `json:"edge_flush,omitempty"`
}

type fretboardRequest struct {
	StartRadius float64 `json:"start_radius"`
	EndRadius   float64 `json:"end_radius"`
	ScaleLength float64 `json:"scale_length"`
	NumFrets    int     `json:"num_frets"`
}

func computed(ctx context.Context, op string, start time.Time, err error) {
	observability.Compute().OnCompute(ctx, op, time.Since(start), err)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, healthResponse{Status: "ok", Version: buildinfo.Version}, http.StatusOK)
}

func (s *Server) parse(w http.ResponseWriter, r *http.Request) {
	var req parseRequest
	if !s.decode(w, r, &req) {
		return
	}
	m, err := units.Parse(req.Text)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, m, http.StatusOK)
}

func (s *Server) convert(w http.ResponseWriter, r *http.Request) {
	var req convertRequest
	if !s.decode(w, r, &req) {
		return
	}
	start := time.Now()
	c, err := convert.Convert(req.Text, req.options(s.opts.Ruler))
	computed(r.Context(), "convert", start, err)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, c.Report, http.StatusOK)
}

func (s *Server) round(w http.ResponseWriter, r *http.Request) {
	var req roundRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.Value == nil {
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "value is required"))
		return
	}
	m, err := ruler.RoundWith(*req.Value, req.options(s.opts.Ruler))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, m, http.StatusOK)
}

func (s *Server) spacing(w http.ResponseWriter, r *http.Request) {
	var req spacingRequest
	if !s.decode(w, r, &req) {
		return
	}
	opts := *s.opts.Spacing
	if req.EdgeDistance != nil {
		opts.EdgeDistance = *req.EdgeDistance
	}
	if req.EdgeFlush != nil {
		opts.EdgeFlush = *req.EdgeFlush
	}
	start := time.Now()
	layout, err := spacing.Compute(req.NutWidth, req.Gauges, opts)
	computed(r.Context(), "spacing", start, err)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, layout.Summary(), http.StatusOK)
}

func (s *Server) fretboard(w http.ResponseWriter, r *http.Request) {
	var req fretboardRequest
	if !s.decode(w, r, &req) {
		return
	}
	start := time.Now()
	table, err := fretboard.Compute(req.StartRadius, req.EndRadius, req.ScaleLength, req.NumFrets)
	computed(r.Context(), "fretboard", start, err)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, table, http.StatusOK)
}
