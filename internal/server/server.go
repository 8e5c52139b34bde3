// Package server exposes the calculation engine to a browser frontend as a
// small JSON API over fasthttp. The server is stateless: every request
// carries the full inputs and gets the full derived session back, so the
// client owns the session lifecycle.
package server

import (
	"log/slog"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"

	"github.com/ficalc/independence-calculator/internal/calculation"
	"github.com/ficalc/independence-calculator/internal/config"
	"github.com/ficalc/independence-calculator/internal/domain"
)

// Server routes API requests to the calculation engine.
type Server struct {
	Engine  *calculation.CalculationEngine
	Logger  *slog.Logger
	metrics fasthttp.RequestHandler
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// AdjustedRequest asks for a slider-driven projection: the original inputs
// plus the requested annual saving.
type AdjustedRequest struct {
	Inputs       domain.UserInputs `json:"inputs"`
	AnnualSaving decimal.Decimal   `json:"annual_saving"`
}

// AdjustedResponse carries the clamped saving actually used and its series.
type AdjustedResponse struct {
	AdjustedSaving     decimal.Decimal         `json:"adjusted_saving"`
	AdjustedProjection domain.ProjectionSeries `json:"adjusted_projection"`
}

// New creates a server over the engine. A nil logger falls back to the
// default slog logger.
func New(engine *calculation.CalculationEngine, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		Engine:  engine,
		Logger:  logger,
		metrics: fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler()),
	}
}

// ListenAndServe blocks serving the API on addr.
func (s *Server) ListenAndServe(addr string) error {
	s.Logger.Info("calculator API listening", "addr", addr, "tax_year", s.Engine.Config.TaxYear)
	return fasthttp.ListenAndServe(addr, s.Handle)
}

// Handle is the fasthttp entry point for all routes.
func (s *Server) Handle(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/api/v1/calculate":
		s.handleCalculate(ctx)
	case "/api/v1/projection/adjusted":
		s.handleAdjusted(ctx)
	case "/healthz":
		ctx.SetStatusCode(http.StatusOK)
		ctx.SetBodyString("ok")
	case "/metrics":
		s.metrics(ctx)
	default:
		s.writeError(ctx, http.StatusNotFound, "not found")
	}
}

func (s *Server) handleCalculate(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		s.writeError(ctx, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var inputs domain.UserInputs
	if err := json.Unmarshal(ctx.PostBody(), &inputs); err != nil {
		s.writeError(ctx, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := config.ValidateInputs(inputs); err != nil {
		calculationsTotal.WithLabelValues("rejected").Inc()
		s.writeError(ctx, http.StatusBadRequest, err.Error())
		return
	}

	start := time.Now()
	session, err := s.Engine.RunSession(inputs)
	if err != nil {
		calculationsTotal.WithLabelValues("error").Inc()
		s.Logger.Error("calculation failed", "error", err)
		s.writeError(ctx, http.StatusUnprocessableEntity, err.Error())
		return
	}
	calculationDuration.Observe(time.Since(start).Seconds())
	calculationsTotal.WithLabelValues("ok").Inc()

	s.writeJSON(ctx, http.StatusOK, session)
}

func (s *Server) handleAdjusted(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		s.writeError(ctx, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req AdjustedRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		s.writeError(ctx, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := config.ValidateInputs(req.Inputs); err != nil {
		s.writeError(ctx, http.StatusBadRequest, err.Error())
		return
	}

	result := s.Engine.PolicyCalc.Calculate(req.Inputs)
	series, used := s.Engine.ProjectionCalc.CalculateAdjustedProjection(
		req.AnnualSaving, result.AfterTaxIncome, result.WealthAccount)

	s.writeJSON(ctx, http.StatusOK, AdjustedResponse{
		AdjustedSaving:     used,
		AdjustedProjection: series,
	})
}

func (s *Server) writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		s.writeError(ctx, http.StatusInternalServerError, "encoding failed: "+err.Error())
		return
	}
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	ctx.SetBody(data)
}

func (s *Server) writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	data, _ := json.Marshal(ErrorResponse{Status: status, Message: message})
	ctx.SetBody(data)
}
