package transport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/goodnatureofminers/airdrop-compiler/internal/airdrop/model"
	"go.uber.org/zap"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	RunReader interface {
		RunByID(ctx context.Context, runID string) (model.Run, error)
		AccountsByRun(ctx context.Context, runID string) ([]model.AccountRow, error)
	}
)

// ReportHandler serves stored runs over HTTP.
type ReportHandler struct {
	runs   RunReader
	logger *zap.Logger
}

// NewReportHandler returns a ReportHandler reading from runs.
func NewReportHandler(runs RunReader, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{runs: runs, logger: logger.Named("report_handler")}
}

// Register mounts the handler routes on mux.
func (h *ReportHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", h.health)
	mux.HandleFunc("GET /runs/{id}", h.run)
	mux.HandleFunc("GET /runs/{id}/accounts", h.accounts)
}

func (h *ReportHandler) health(w http.ResponseWriter, _ *http.Request) {
	h.write(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (h *ReportHandler) run(w http.ResponseWriter, r *http.Request) {
	run, err := h.runs.RunByID(r.Context(), r.PathValue("id"))
	if err != nil {
		h.fail(w, err)
		return
	}
	h.write(w, http.StatusOK, NewRunDocument(run))
}

func (h *ReportHandler) accounts(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, err := h.runs.RunByID(r.Context(), id); err != nil {
		h.fail(w, err)
		return
	}
	rows, err := h.runs.AccountsByRun(r.Context(), id)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.write(w, http.StatusOK, NewAccountDocuments(rows))
}

func (h *ReportHandler) fail(w http.ResponseWriter, err error) {
	if errors.Is(err, model.ErrRunNotFound) {
		h.write(w, http.StatusNotFound, map[string]string{"error": "run not found"})
		return
	}
	h.logger.Error("report request failed", zap.Error(err))
	h.write(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
}

func (h *ReportHandler) write(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Warn("write response", zap.Error(err))
	}
}
