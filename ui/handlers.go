package ui

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"opsdiag/domain/core"
	"opsdiag/internal/errors"
	"opsdiag/models"
)

// DiagnoseRequest is the intake payload: who the report is for plus the raw
// questionnaire answers.
type DiagnoseRequest struct {
	ClientName  string         `json:"client_name"`
	ClientEmail string         `json:"client_email"`
	Answers     map[string]any `json:"answers"`
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	a.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (a *App) handleDiagnose(w http.ResponseWriter, r *http.Request) {
	var req DiagnoseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.respondError(w, http.StatusBadRequest, errors.InvalidInput("request body must be JSON"))
		return
	}

	result, err := a.diagnoser.Diagnose(r.Context(), req.ClientName, req.ClientEmail, req.Answers)
	if err != nil {
		if core.IsInvalidInputError(err) || errors.GetCode(err) == errors.CodeInvalidInput {
			a.respondError(w, http.StatusBadRequest, err)
			return
		}
		a.respondError(w, http.StatusInternalServerError, err)
		return
	}

	a.respondJSON(w, http.StatusCreated, result)
}

func (a *App) handleListDiagnoses(w http.ResponseWriter, r *http.Request) {
	records, err := a.diagnoses.ListDiagnoses(r.Context(), 100)
	if err != nil {
		a.respondError(w, http.StatusInternalServerError, err)
		return
	}
	a.respondJSON(w, http.StatusOK, map[string]any{"diagnoses": records})
}

func (a *App) handleGetDiagnosis(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		a.respondError(w, http.StatusBadRequest, errors.InvalidInput("diagnosis id must be a UUID"))
		return
	}

	record, err := a.diagnoses.GetDiagnosis(r.Context(), id)
	if err != nil {
		if core.IsNotFoundError(err) {
			a.respondError(w, http.StatusNotFound, err)
			return
		}
		a.respondError(w, http.StatusInternalServerError, err)
		return
	}
	a.respondJSON(w, http.StatusOK, record)
}

func (a *App) handleDiagnosisReport(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		a.respondError(w, http.StatusBadRequest, errors.InvalidInput("diagnosis id must be a UUID"))
		return
	}

	record, err := a.diagnoses.GetDiagnosis(r.Context(), id)
	if err != nil {
		if core.IsNotFoundError(err) {
			a.respondError(w, http.StatusNotFound, err)
			return
		}
		a.respondError(w, http.StatusInternalServerError, err)
		return
	}

	submission, err := a.submissions.GetSubmission(r.Context(), record.SubmissionID)
	if err != nil {
		a.respondError(w, http.StatusInternalServerError, err)
		return
	}

	html, err := RenderReportHTML(record, submission)
	if err != nil {
		a.respondError(w, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(html)
}

func (a *App) handleStats(w http.ResponseWriter, r *http.Request) {
	summary, err := a.statsSvc.Summarize(r.Context())
	if err != nil {
		a.respondError(w, http.StatusInternalServerError, err)
		return
	}
	a.respondJSON(w, http.StatusOK, summary)
}

func (a *App) handleRescore(w http.ResponseWriter, r *http.Request) {
	outcome, err := a.rescorer.RescoreAll(r.Context())
	if err != nil {
		a.respondError(w, http.StatusInternalServerError, err)
		return
	}
	a.respondJSON(w, http.StatusOK, outcome)
}

func (a *App) handleExport(w http.ResponseWriter, r *http.Request) {
	records, err := a.diagnoses.ListDiagnoses(r.Context(), 0)
	if err != nil {
		a.respondError(w, http.StatusInternalServerError, err)
		return
	}

	submissions, err := a.submissions.ListSubmissions(r.Context(), 0)
	if err != nil {
		a.respondError(w, http.StatusInternalServerError, err)
		return
	}
	bySubmission := make(map[string]*models.Submission, len(submissions))
	for _, s := range submissions {
		bySubmission[s.ID.String()] = s
	}

	path, err := a.exporter.Export(records, bySubmission)
	if err != nil {
		a.respondError(w, http.StatusInternalServerError, &errors.AppError{
			Code:    errors.CodeExportFailed,
			Message: "exporting workbook",
			Cause:   err,
		})
		return
	}
	a.respondJSON(w, http.StatusOK, map[string]string{"path": path})
}

func (a *App) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		a.logger.Error("encoding response: %v", err)
	}
}

func (a *App) respondError(w http.ResponseWriter, status int, err error) {
	a.logger.Warn("request failed (%d): %v", status, err)
	a.respondJSON(w, status, map[string]string{
		"error": err.Error(),
		"code":  errors.GetCode(err),
	})
}
