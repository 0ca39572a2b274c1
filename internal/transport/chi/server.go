package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/interviewprep/internal/domain"
	domanalysis "github.com/kailas-cloud/interviewprep/internal/domain/analysis"
	"github.com/kailas-cloud/interviewprep/internal/logger"
	healthuc "github.com/kailas-cloud/interviewprep/internal/usecase/health"
	"github.com/kailas-cloud/interviewprep/internal/version"
)

const (
	serviceName  = "NeuraFlow AI Services"
	maxBodyBytes = 1 << 20
)

type errorCode string

const (
	codeBadRequest       errorCode = "bad_request"
	codeValidationFailed errorCode = "validation_failed"
	codeServiceFailure   errorCode = "service_failure"
	codeInternalError    errorCode = "internal_error"
)

// Analyzer runs one analysis request.
type Analyzer interface {
	Process(ctx context.Context, req domanalysis.Request) (string, error)
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server serves the analysis API.
type Server struct {
	analyzer      Analyzer
	health        *healthuc.Service
	llmProvider   string
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(analyzer Analyzer, health *healthuc.Service, llmProvider string) *Server {
	s := &Server{
		analyzer:    analyzer,
		health:      health,
		llmProvider: llmProvider,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrInvalidRequest, http.StatusBadRequest, codeValidationFailed),
		sentinelHandler(domain.ErrServiceFailure, http.StatusInternalServerError, codeServiceFailure),
	}
	return s
}

// Register mounts every route on r.
func (s *Server) Register(r chi.Router) {
	r.Get("/", s.Info)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
	r.Post("/ai/query", s.Query)
	r.Post("/analyze", s.Query)
}

type queryRequest struct {
	ResumeText     string `json:"resume_text"`
	JobDescription string `json:"job_description"`
	PreviousOutput string `json:"previous_output,omitempty"`
	NewQuestion    string `json:"new_question,omitempty"`
}

type queryResponse struct {
	AIOutput string `json:"ai_output"`
}

type errorResponse struct {
	Code    errorCode `json:"code"`
	Message string    `json:"message"`
}

type infoResponse struct {
	Service     string `json:"service"`
	Status      string `json:"status"`
	Version     string `json:"version"`
	LLMProvider string `json:"llm_provider"`
}

type healthResponse struct {
	Status healthuc.Status                 `json:"status"`
	Checks map[string]healthuc.CheckResult `json:"checks"`
}

// Query handles POST /ai/query and its /analyze alias.
func (s *Server) Query(w http.ResponseWriter, r *http.Request) {
	var body queryRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	req, err := domanalysis.Resolve(body.ResumeText, body.JobDescription, body.PreviousOutput, body.NewQuestion)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
		return
	}

	out, err := s.analyzer.Process(r.Context(), req)
	if err != nil {
		s.handleDomainError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, queryResponse{AIOutput: out})
}

// Info handles GET /.
func (s *Server) Info(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, infoResponse{
		Service:     serviceName,
		Status:      "running",
		Version:     version.Version,
		LLMProvider: s.llmProvider,
	})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, healthResponse{Status: report.Status, Checks: report.Checks})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code errorCode, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrInvalidRequest,
		domain.ErrServiceFailure,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code errorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(ctx context.Context, w http.ResponseWriter, err error) {
	log := logger.FromContext(ctx)
	log.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	log.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}
