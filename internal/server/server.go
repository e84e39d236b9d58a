// Package server exposes the calculators over a JSON HTTP API.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/delvechio-designs/mortgage-toolkit/internal/calc"
	"github.com/delvechio-designs/mortgage-toolkit/internal/config"
	"github.com/delvechio-designs/mortgage-toolkit/internal/rates"
	"github.com/delvechio-designs/mortgage-toolkit/internal/tracing"
	"github.com/delvechio-designs/mortgage-toolkit/pkg/amortize"
	"github.com/delvechio-designs/mortgage-toolkit/pkg/constants"
)

const (
	requestTimeout  = 60 * time.Second
	shutdownTimeout = 10 * time.Second
)

// RateSource provides the current mortgage rate quote.
type RateSource interface {
	Current(ctx context.Context) rates.Quote
}

type handler struct {
	logger      *zap.Logger
	maxBodySize int64
	version     string
	rates       RateSource
}

// NewHandler constructs the HTTP handler serving the calculator API.
func NewHandler(logger *zap.Logger, cfg *Config, version string, rateSource RateSource) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	maxBodySize := int64(constants.DefaultMaxBodySizeBytes)
	var allowedOrigins []string
	if cfg != nil {
		if cfg.BodySizeBytes() > 0 {
			maxBodySize = cfg.BodySizeBytes()
		}
		allowedOrigins = cfg.AllowedOrigins
	}
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:      logger,
		maxBodySize: maxBodySize,
		version:     trimmedVersion,
		rates:       rateSource,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/health", h.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/version", h.handleVersion)
		r.Get("/rates", h.handleRates)

		r.Route("/calc", func(r chi.Router) {
			r.Post("/"+config.CalculatorPurchase, calcHandler(h, config.CalculatorPurchase, calc.ComputePurchase))
			r.Post("/"+config.CalculatorRefinance, calcHandler(h, config.CalculatorRefinance, calc.ComputeRefinance))
			r.Post("/"+config.CalculatorAffordability, calcHandler(h, config.CalculatorAffordability, calc.ComputeAffordability))
			r.Post("/"+config.CalculatorRentVsBuy, calcHandler(h, config.CalculatorRentVsBuy, calc.ComputeRentVsBuy))
			r.Post("/"+config.CalculatorVAPurchase, calcHandler(h, config.CalculatorVAPurchase, calc.ComputeVAPurchase))
			r.Post("/"+config.CalculatorVARefinance, calcHandler(h, config.CalculatorVARefinance, calc.ComputeVARefinance))
			r.Post("/"+config.CalculatorDSCR, calcHandler(h, config.CalculatorDSCR, calc.ComputeDSCR))
			r.Post("/"+config.CalculatorFixFlip, calcHandler(h, config.CalculatorFixFlip, calc.ComputeFixFlip))
		})

		r.Route("/amortization", func(r chi.Router) {
			r.Post("/schedule", calcHandler(h, config.CalculatorSchedule, calc.ComputeSchedule))
			r.Post("/payoff", calcHandler(h, config.CalculatorPayoff, calc.ComputePayoff))
		})
	})

	return r
}

// calcHandler adapts a pure compute function into an HTTP handler with
// decoding, status mapping, metrics, and tracing.
func calcHandler[In, Out any](h *handler, name string, compute func(In) (Out, error)) http.HandlerFunc {
	op := "server.calc." + name
	return func(w http.ResponseWriter, r *http.Request) {
		if tracing.Tracer != nil {
			ctx, end := startSpan(r.Context(), "calc."+name)
			defer end()
			r = r.WithContext(ctx)
		}

		var in In
		if err := h.decodeBody(w, r, &in); err != nil {
			calculationsTotal.WithLabelValues(name, "invalid").Inc()
			h.respondError(w, http.StatusBadRequest, err.Error(), op)
			return
		}

		out, err := compute(in)
		if err != nil {
			if errors.Is(err, amortize.ErrNonAmortizing) {
				calculationsTotal.WithLabelValues(name, "non_amortizing").Inc()
				h.respondError(w, http.StatusUnprocessableEntity,
					"payment does not cover monthly interest; loan never amortizes", op)
				return
			}
			calculationsTotal.WithLabelValues(name, "invalid").Inc()
			h.respondError(w, http.StatusBadRequest, err.Error(), op)
			return
		}

		calculationsTotal.WithLabelValues(name, "ok").Inc()
		h.writeJSON(w, http.StatusOK, out)
	}
}

func startSpan(ctx context.Context, name string) (context.Context, func()) {
	spanCtx, span := tracing.Tracer.Start(ctx, name)
	return spanCtx, func() { span.End() }
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"version": h.version})
}

func (h *handler) handleRates(w http.ResponseWriter, r *http.Request) {
	if h.rates == nil {
		h.writeJSON(w, http.StatusOK, rates.Fallback())
		rateQuotesTotal.WithLabelValues("fallback").Inc()
		return
	}

	quote := h.rates.Current(r.Context())
	source := "live"
	if quote.Estimated {
		source = "fallback"
	}
	rateQuotesTotal.WithLabelValues(source).Inc()
	h.writeJSON(w, http.StatusOK, quote)
}

func (h *handler) decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	if h.maxBodySize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	}

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return fmt.Errorf("request body exceeds limit of %d bytes", h.maxBodySize)
		}
		return fmt.Errorf("invalid request body: %v", err)
	}
	return nil
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("calculator request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)
	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}

// Run serves the API until the context is canceled, then drains in-flight
// requests.
func Run(ctx context.Context, cfg *Config, h http.Handler, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	srv := &http.Server{
		Addr:              cfg.Address,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			zap.String("op", "server.Run"),
			zap.String("address", cfg.Address),
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Info("server shutting down", zap.String("op", "server.Run"))
		return srv.Shutdown(shutdownCtx)
	}
}
