package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/iwvelando/mortgage-payoff/internal/session"
	"github.com/iwvelando/mortgage-payoff/pkg/constants"
	"github.com/iwvelando/mortgage-payoff/pkg/datetime"
	"github.com/iwvelando/mortgage-payoff/pkg/format"
	"github.com/iwvelando/mortgage-payoff/pkg/mathutil"
	"github.com/iwvelando/mortgage-payoff/pkg/mortgage"
	"github.com/iwvelando/mortgage-payoff/pkg/output"
	"github.com/iwvelando/mortgage-payoff/pkg/schedule"
	"go.uber.org/zap"
)

// maxJSONBodyBytes bounds request bodies carrying loan inputs.
const maxJSONBodyBytes = 64 * 1024

type handler struct {
	logger        *zap.Logger
	calc          *mortgage.Calculator
	store         session.Store
	metrics       *metrics
	maxUploadSize int64
	version       string
	now           func() time.Time
}

// NewHandler constructs the HTTP handler that serves the payoff API. A nil
// store keeps sessions in memory without expiry.
func NewHandler(logger *zap.Logger, store session.Store, maxUploadSize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if store == nil {
		store = session.NewMemoryStore(0)
	}

	if maxUploadSize <= 0 {
		maxUploadSize = constants.DefaultMaxUploadSizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:        logger,
		calc:          mortgage.NewCalculator(logger),
		store:         store,
		metrics:       newMetrics(),
		maxUploadSize: maxUploadSize,
		version:       trimmedVersion,
		now:           time.Now,
	}
	return h.routes()
}

func (h *handler) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(h.metrics.instrument)

	r.Route("/api", func(r chi.Router) {
		// Stateless calculations
		r.Post("/payoff", h.handlePayoff)
		r.Post("/schedule", h.handleSchedule)
		r.Post("/schedule.csv", h.handleScheduleCSV)

		// Sessions hold the current schedule between requests
		r.Post("/sessions", h.handleCreateSession)
		r.Route("/sessions/{id}", func(r chi.Router) {
			r.Get("/", h.handleGetSession)
			r.Delete("/", h.handleDeleteSession)
			r.Post("/calculate", h.handleSessionCalculate)
			r.Post("/import", h.handleSessionImport)
			r.Get("/export", h.handleSessionExport)
		})

		// Version endpoint for client metadata
		r.Get("/version", h.handleVersion)
	})

	r.Handle("/metrics", h.metrics.handler())
	return r
}

// inputsRequest is the JSON form of a loan. The rate is a percentage.
type inputsRequest struct {
	Balance           float64 `json:"balance"`
	AnnualRatePercent float64 `json:"annualRatePercent"`
	MonthlyPayment    float64 `json:"monthlyPayment"`
	ExtraPrincipal    float64 `json:"extraPrincipal"`
	NextPaymentDate   string  `json:"nextPaymentDate,omitempty"`
}

type summaryResponse struct {
	PayoffDate           string  `json:"payoffDate"`
	PayoffMonth          string  `json:"payoffMonth"`
	Months               int     `json:"months"`
	TotalInterest        float64 `json:"totalInterest"`
	TotalInterestDisplay string  `json:"totalInterestDisplay"`
}

type rowResponse struct {
	Date      string  `json:"date"`
	Principal float64 `json:"principal"`
	Interest  float64 `json:"interest"`
	Balance   float64 `json:"balance"`
}

type scheduleResponse struct {
	Summary        summaryResponse `json:"summary"`
	Schedule       []rowResponse   `json:"schedule"`
	Balances       []float64       `json:"balances"`
	TotalPrincipal float64         `json:"totalPrincipal"`
	TotalPaid      float64         `json:"totalPaid"`
	CSV            string          `json:"csv"`
	Duration       string          `json:"duration"`
}

type sessionResponse struct {
	ID        string           `json:"id"`
	Source    string           `json:"source,omitempty"`
	Inputs    *inputsRequest   `json:"inputs,omitempty"`
	Summary   *summaryResponse `json:"summary,omitempty"`
	Schedule  []rowResponse    `json:"schedule"`
	UpdatedAt string           `json:"updatedAt"`
}

func (h *handler) handlePayoff(w http.ResponseWriter, r *http.Request) {
	const op = "server.handlePayoff"

	inputs, err := h.decodeInputs(w, r)
	if err != nil {
		h.respondErrorWithOp(w, statusForError(err), err.Error(), op)
		return
	}

	summary, err := h.calc.Payoff(inputs)
	h.metrics.observeCalculation(err)
	if err != nil {
		h.respondErrorWithOp(w, statusForError(err), err.Error(), op)
		return
	}

	h.writeJSON(w, http.StatusOK, buildSummary(summary))
}

func (h *handler) handleSchedule(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleSchedule"
	start := time.Now()

	inputs, err := h.decodeInputs(w, r)
	if err != nil {
		h.respondErrorWithOp(w, statusForError(err), err.Error(), op)
		return
	}

	result, err := h.calc.Calculate(inputs)
	h.metrics.observeCalculation(err)
	if err != nil {
		h.respondErrorWithOp(w, statusForError(err), err.Error(), op)
		return
	}

	csvData, err := output.CsvString(result.Schedule)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusInternalServerError, fmt.Sprintf("failed to render CSV: %v", err), op)
		return
	}

	duration := time.Since(start)
	h.logger.Info("schedule computed",
		zap.String("op", op),
		zap.Int("months", result.Summary.Months),
		zap.Duration("duration", duration),
	)

	h.writeJSON(w, http.StatusOK, scheduleResponse{
		Summary:        buildSummary(result.Summary),
		Schedule:       buildRows(result.Schedule),
		Balances:       result.Balances(),
		TotalPrincipal: result.TotalPrincipal(),
		TotalPaid:      result.TotalPaid(),
		CSV:            csvData,
		Duration:       duration.String(),
	})
}

func (h *handler) handleScheduleCSV(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleScheduleCSV"

	inputs, err := h.decodeInputs(w, r)
	if err != nil {
		h.respondErrorWithOp(w, statusForError(err), err.Error(), op)
		return
	}

	rows, err := h.calc.Schedule(inputs)
	h.metrics.observeCalculation(err)
	if err != nil {
		h.respondErrorWithOp(w, statusForError(err), err.Error(), op)
		return
	}

	h.writeCSV(w, rows, "schedule.csv", op)
}

func (h *handler) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleCreateSession"

	s := session.New(h.now())
	if err := h.store.Save(r.Context(), s); err != nil {
		h.respondErrorWithOp(w, http.StatusInternalServerError, err.Error(), op)
		return
	}

	h.logger.Debug("session created", zap.String("op", op), zap.String("session", s.ID))
	h.writeJSON(w, http.StatusCreated, buildSession(s))
}

func (h *handler) handleGetSession(w http.ResponseWriter, r *http.Request) {
	s, ok := h.loadSession(w, r, "server.handleGetSession")
	if !ok {
		return
	}
	h.writeJSON(w, http.StatusOK, buildSession(s))
}

func (h *handler) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleDeleteSession"

	if err := h.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.respondErrorWithOp(w, statusForError(err), err.Error(), op)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) handleSessionCalculate(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleSessionCalculate"

	s, ok := h.loadSession(w, r, op)
	if !ok {
		return
	}

	inputs, err := h.decodeInputs(w, r)
	if err != nil {
		h.respondErrorWithOp(w, statusForError(err), err.Error(), op)
		return
	}

	result, err := h.calc.Calculate(inputs)
	h.metrics.observeCalculation(err)
	if err != nil {
		h.respondErrorWithOp(w, statusForError(err), err.Error(), op)
		return
	}

	s.Apply(result, h.now())
	h.saveAndRespond(r.Context(), w, s, op)
}

func (h *handler) handleSessionImport(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleSessionImport"

	s, ok := h.loadSession(w, r, op)
	if !ok {
		return
	}

	if h.maxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	}
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondErrorWithOp(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("upload exceeds limit of %d bytes", h.maxUploadSize), op)
			return
		}
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to parse upload: %v", err), op)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, "missing schedule file", op)
		return
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			h.logger.Warn("failed to close uploaded file",
				zap.String("op", op),
				zap.Error(closeErr),
			)
		}
	}()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, file); err != nil {
		h.respondErrorWithOp(w, http.StatusInternalServerError, fmt.Sprintf("failed to read schedule: %v", err), op)
		return
	}

	rows, err := schedule.ReadCSV(&buf)
	h.metrics.observeImport(err)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	s.Load(rows, h.now())
	h.logger.Info("schedule imported",
		zap.String("op", op),
		zap.String("session", s.ID),
		zap.Int("rows", len(rows)),
	)
	h.saveAndRespond(r.Context(), w, s, op)
}

func (h *handler) handleSessionExport(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleSessionExport"

	s, ok := h.loadSession(w, r, op)
	if !ok {
		return
	}
	h.writeCSV(w, s.Schedule, fmt.Sprintf("schedule-%s.csv", s.ID), op)
}

func (h *handler) handleVersion(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) loadSession(w http.ResponseWriter, r *http.Request, op string) (*session.Session, bool) {
	s, err := h.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondErrorWithOp(w, statusForError(err), err.Error(), op)
		return nil, false
	}
	return s, true
}

func (h *handler) saveAndRespond(ctx context.Context, w http.ResponseWriter, s *session.Session, op string) {
	if err := h.store.Save(ctx, s); err != nil {
		h.respondErrorWithOp(w, http.StatusInternalServerError, err.Error(), op)
		return
	}
	h.writeJSON(w, http.StatusOK, buildSession(s))
}

// decodeInputs reads a JSON loan from the request body. A missing
// nextPaymentDate means today.
func (h *handler) decodeInputs(w http.ResponseWriter, r *http.Request) (mortgage.Inputs, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)

	var req inputsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return mortgage.Inputs{}, &requestError{
				status: http.StatusRequestEntityTooLarge,
				msg:    fmt.Sprintf("request body exceeds limit of %d bytes", maxJSONBodyBytes),
			}
		}
		return mortgage.Inputs{}, &requestError{msg: fmt.Sprintf("failed to decode inputs: %v", err)}
	}

	next := datetime.Truncate(h.now())
	if req.NextPaymentDate != "" {
		parsed, err := datetime.ParseDate(req.NextPaymentDate)
		if err != nil {
			return mortgage.Inputs{}, &requestError{msg: fmt.Sprintf("invalid nextPaymentDate %q", req.NextPaymentDate)}
		}
		next = parsed
	}

	inputs := mortgage.InputsFromPercent(req.Balance, req.AnnualRatePercent, req.MonthlyPayment, req.ExtraPrincipal, next)
	if err := inputs.Validate(); err != nil {
		return mortgage.Inputs{}, err
	}
	return inputs, nil
}

// requestError marks a malformed request body. A zero status means 400.
type requestError struct {
	status int
	msg    string
}

func (e *requestError) Error() string {
	return e.msg
}

func statusForError(err error) int {
	var reqErr *requestError
	switch {
	case errors.As(err, &reqErr):
		if reqErr.status != 0 {
			return reqErr.status
		}
		return http.StatusBadRequest
	case errors.Is(err, mortgage.ErrInsufficientPayment):
		return http.StatusUnprocessableEntity
	case errors.Is(err, mortgage.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, session.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func buildSummary(summary mortgage.PayoffSummary) summaryResponse {
	return summaryResponse{
		PayoffDate:           datetime.FormatDate(summary.PayoffDate),
		PayoffMonth:          datetime.FormatMonthYear(summary.PayoffDate),
		Months:               summary.Months,
		TotalInterest:        summary.TotalInterest,
		TotalInterestDisplay: format.Currency(summary.TotalInterest),
	}
}

func buildRows(rows []mortgage.PaymentRow) []rowResponse {
	out := make([]rowResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, rowResponse{
			Date:      datetime.FormatDate(row.Date),
			Principal: row.Principal,
			Interest:  row.Interest,
			Balance:   row.Balance,
		})
	}
	return out
}

func buildSession(s *session.Session) sessionResponse {
	resp := sessionResponse{
		ID:        s.ID,
		Source:    s.Source,
		Schedule:  buildRows(s.Schedule),
		UpdatedAt: s.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if s.Inputs != nil {
		resp.Inputs = &inputsRequest{
			Balance:           s.Inputs.Balance,
			AnnualRatePercent: mathutil.FractionToPercent(s.Inputs.AnnualRate),
			MonthlyPayment:    s.Inputs.MonthlyPayment,
			ExtraPrincipal:    s.Inputs.ExtraPrincipal,
			NextPaymentDate:   datetime.FormatDate(s.Inputs.NextPaymentDate),
		}
	}
	if s.Summary != nil {
		summary := buildSummary(*s.Summary)
		resp.Summary = &summary
	}
	return resp
}

func (h *handler) writeCSV(w http.ResponseWriter, rows []mortgage.PaymentRow, filename string, op string) {
	var buf bytes.Buffer
	if err := output.CsvFormat(&buf, rows); err != nil {
		h.respondErrorWithOp(w, http.StatusInternalServerError, fmt.Sprintf("failed to render CSV: %v", err), op)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logger.Error("failed to write CSV response", zap.String("op", op), zap.Error(err))
	}
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("payoff request failed",
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
