package api

import (
	"errors"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/etnz/compound"
)

type server struct {
	logger  *zap.Logger
	metrics *Metrics
	cache   *cache.Cache // nil when disabled
	maxBody int64
}

type errorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

type totalsResponse struct {
	Projections []*compound.Projection   `json:"projections"`
	Totals      compound.PortfolioTotals `json:"totals"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg, field string) {
	writeJSON(w, status, errorResponse{Status: status, Message: msg, Field: field})
}

// handleError maps compound errors to HTTP responses.
func (s *server) handleError(w http.ResponseWriter, err error) {
	var invalid *compound.InvalidParameterError
	switch {
	case errors.As(err, &invalid):
		s.logger.Debug("invalid investment", zap.String("field", invalid.Field), zap.String("error", err.Error()))
		s.metrics.IncrRejection(invalid.Field)
		writeError(w, http.StatusBadRequest, err.Error(), invalid.Field)
	case errors.Is(err, compound.ErrInvalidParameter):
		writeError(w, http.StatusBadRequest, err.Error(), "")
	default:
		s.logger.Error("unhandled error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal server error", "")
	}
}

// decode reads the JSON body of r into v.
func (s *server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxBody)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var invalid *compound.InvalidParameterError
		if errors.As(err, &invalid) {
			s.handleError(w, err)
			return false
		}
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large", "")
			return false
		}
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error(), "")
		return false
	}
	return true
}

// project returns the projection of inv, served from the cache when possible.
func (s *server) project(inv compound.Investment) (*compound.Projection, error) {
	if err := inv.Validate(); err != nil {
		return nil, err
	}
	var key string
	if s.cache != nil {
		b, err := json.Marshal(inv)
		if err != nil {
			return nil, err
		}
		key = string(b)
		if v, ok := s.cache.Get(key); ok {
			s.metrics.IncrCacheHit()
			return v.(*compound.Projection), nil
		}
		s.metrics.IncrCacheMiss()
	}

	p, err := compound.Project(inv)
	if err != nil {
		return nil, err
	}
	s.metrics.IncrProjection(inv.Frequency.String())
	if s.cache != nil {
		s.cache.SetDefault(key, p)
	}
	return p, nil
}

// projectHandler handles POST /v1/projections.
func (s *server) projectHandler(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer func() { s.metrics.RecordRequestDuration("projections", time.Since(start)) }()

	var inv compound.Investment
	if !s.decode(w, r, &inv) {
		return
	}
	p, err := s.project(inv)
	if err != nil {
		s.handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// totalsHandler handles POST /v1/portfolio/totals.
func (s *server) totalsHandler(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer func() { s.metrics.RecordRequestDuration("portfolio_totals", time.Since(start)) }()

	var invs []compound.Investment
	if !s.decode(w, r, &invs) {
		return
	}
	projections, err := compound.ProjectAllFunc(invs, s.project)
	if err != nil {
		s.handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, totalsResponse{
		Projections: projections,
		Totals:      compound.Summarize(projections...),
	})
}
