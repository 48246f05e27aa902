package ui

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opsdiag/adapters/excel"
	"opsdiag/adapters/memory"
	"opsdiag/app"
	"opsdiag/domain/diagnosis"
	"opsdiag/internal/testkit"
)

func newTestApp(t *testing.T) *App {
	t.Helper()

	submissions := memory.NewSubmissionRepository()
	diagnoses := memory.NewDiagnosisRepository()
	assembler := diagnosis.NewAssembler(nil)

	return NewApp(Config{
		Diagnoser:   app.NewDiagnosisService(assembler, submissions, diagnoses, nil),
		Stats:       app.NewStatsService(diagnoses),
		Rescorer:    app.NewRescoreService(assembler, submissions, diagnoses, nil, 4),
		Submissions: submissions,
		Diagnoses:   diagnoses,
		Exporter:    excel.NewExporter(t.TempDir(), 0),
	})
}

func postDiagnose(t *testing.T, a *App, answers map[string]any) *DiagnoseResponse {
	t.Helper()

	body, err := json.Marshal(DiagnoseRequest{
		ClientName:  "Test Client",
		ClientEmail: "client@example.com",
		Answers:     answers,
	})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/diagnose", bytes.NewReader(body))
	a.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, "body: %s", rec.Body.String())

	var resp DiagnoseResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return &resp
}

// DiagnoseResponse mirrors the wire shape of a successful diagnose call.
type DiagnoseResponse struct {
	Diagnosis struct {
		Track string `json:"track"`
		Match struct {
			Primary struct {
				Key   string `json:"key"`
				Score int    `json:"score"`
			} `json:"primary"`
		} `json:"bottleneck"`
	} `json:"diagnosis"`
	Record struct {
		ID           string `json:"id"`
		SubmissionID string `json:"submission_id"`
		TurnoverCost int    `json:"turnover_cost"`
	} `json:"record"`
}

func TestHandleHealth(t *testing.T) {
	a := newTestApp(t)

	rec := httptest.NewRecorder()
	a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok"`)
}

func TestHandleDiagnose(t *testing.T) {
	a := newTestApp(t)

	resp := postDiagnose(t, a, testkit.TimeBoundAnswers())

	assert.Equal(t, "B", resp.Diagnosis.Track)
	assert.NotEmpty(t, resp.Diagnosis.Match.Primary.Key)
	assert.NotEmpty(t, resp.Record.ID)
	assert.Equal(t, 30000, resp.Record.TurnoverCost)
}

func TestHandleDiagnose_BadJSON(t *testing.T) {
	a := newTestApp(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/diagnose", strings.NewReader("{not json"))
	a.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleDiagnose_InvalidAnswerType(t *testing.T) {
	a := newTestApp(t)

	body, err := json.Marshal(map[string]any{
		"answers": map[string]any{"doc_state": true},
	})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/diagnose", bytes.NewReader(body))
	a.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "doc_state")
}

func TestHandleGetDiagnosis(t *testing.T) {
	a := newTestApp(t)
	created := postDiagnose(t, a, testkit.DecisionHeavyAnswers())

	rec := httptest.NewRecorder()
	a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/diagnoses/"+created.Record.ID, nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got struct {
		ID    string `json:"id"`
		Track string `json:"track"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, created.Record.ID, got.ID)
	assert.Equal(t, "A", got.Track)
}

func TestHandleGetDiagnosis_NotFound(t *testing.T) {
	a := newTestApp(t)

	rec := httptest.NewRecorder()
	a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/diagnoses/6f1f86ff-62b2-4f4a-b39c-3a0b0d8f74a1", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleGetDiagnosis_BadID(t *testing.T) {
	a := newTestApp(t)

	rec := httptest.NewRecorder()
	a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/diagnoses/not-a-uuid", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleListDiagnoses(t *testing.T) {
	a := newTestApp(t)
	postDiagnose(t, a, testkit.TimeBoundAnswers())
	postDiagnose(t, a, testkit.FounderLedAnswers())

	rec := httptest.NewRecorder()
	a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/diagnoses", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got struct {
		Diagnoses []json.RawMessage `json:"diagnoses"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got.Diagnoses, 2)
}

func TestHandleDiagnosisReport(t *testing.T) {
	a := newTestApp(t)
	created := postDiagnose(t, a, testkit.TimeBoundAnswers())

	rec := httptest.NewRecorder()
	a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/diagnoses/"+created.Record.ID+"/report", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "<h1")
	assert.Contains(t, rec.Body.String(), "Test Client")
	assert.Contains(t, rec.Body.String(), "Questions to Validate")
}

func TestHandleStats(t *testing.T) {
	a := newTestApp(t)
	postDiagnose(t, a, testkit.TimeBoundAnswers())
	postDiagnose(t, a, testkit.DecisionHeavyAnswers())

	rec := httptest.NewRecorder()
	a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/stats", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got struct {
		Total   int            `json:"total"`
		ByTrack map[string]int `json:"by_track"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 2, got.Total)
	assert.Equal(t, 1, got.ByTrack["A"])
	assert.Equal(t, 1, got.ByTrack["B"])
}

func TestHandleRescore(t *testing.T) {
	a := newTestApp(t)
	postDiagnose(t, a, testkit.TimeBoundAnswers())
	postDiagnose(t, a, testkit.FounderLedAnswers())

	rec := httptest.NewRecorder()
	a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/rescore", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got struct {
		Total    int `json:"total"`
		Rescored int `json:"rescored"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 2, got.Total)
	assert.Equal(t, 2, got.Rescored)
}

func TestHandleExport(t *testing.T) {
	a := newTestApp(t)
	postDiagnose(t, a, testkit.TimeBoundAnswers())

	rec := httptest.NewRecorder()
	a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/export", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got struct {
		Path string `json:"path"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, ".xlsx", filepath.Ext(got.Path))

	info, err := os.Stat(got.Path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
