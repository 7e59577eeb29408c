package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cardiodash/app"
	"cardiodash/domain/cardio"
	"cardiodash/internal/errors"
	"cardiodash/internal/pipeline"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticLoader struct {
	ds  *cardio.Dataset
	err error
}

func (l staticLoader) Load(context.Context) (*cardio.Dataset, error) {
	return l.ds, l.err
}

func newTestRouter(loader staticLoader, defaults pipeline.SelectionRequest) *Router {
	return NewRouter(app.NewDashboardService(loader, defaults, pipeline.DefaultOptions()), nil)
}

func records() *cardio.Dataset {
	return cardio.NewDataset([]cardio.Record{
		{AgeCategory: "25-29", Sex: "Male", SmokingHistory: "Yes", HeartDisease: "Yes", Checkup: cardio.DefaultRecentCheckup, BMI: 31},
		{AgeCategory: "25-29", Sex: "Female", SmokingHistory: "No", HeartDisease: "No", Checkup: cardio.DefaultRecentCheckup, BMI: 24},
		{AgeCategory: "60-64", Sex: "Male", SmokingHistory: "No", HeartDisease: "No", Checkup: "Never", BMI: 27},
		{AgeCategory: "60-64", Sex: "Female", SmokingHistory: "No", HeartDisease: "No", Checkup: "Never", BMI: 23},
	})
}

func serve(r *Router, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestSummary(t *testing.T) {
	r := newTestRouter(staticLoader{ds: records()}, pipeline.SelectionRequest{})

	rec := serve(r, "/api/summary?smoking=No&age=25-29,60-64")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var summary pipeline.Summary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, 3, summary.KPIs.Total)
	assert.Equal(t, 0.0, summary.KPIs.HeartDiseaseRate)
	require.NotNil(t, summary.KPIs.AverageBMI)
	assert.InDelta(t, 24.6667, *summary.KPIs.AverageBMI, 1e-3)
}

func TestSummaryUsesConfiguredDefaults(t *testing.T) {
	r := newTestRouter(staticLoader{ds: records()}, pipeline.SelectionRequest{Sex: pipeline.Only("Male")})

	var summary pipeline.Summary
	rec := serve(r, "/api/summary")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, 2, summary.KPIs.Total)
	assert.Equal(t, 50.0, summary.KPIs.HeartDiseaseRate)

	rec = serve(r, "/api/summary?sex=")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, 0, summary.KPIs.Total)
	assert.Nil(t, summary.KPIs.AverageBMI)
}

func TestOptions(t *testing.T) {
	r := newTestRouter(staticLoader{ds: records()}, pipeline.SelectionRequest{})

	rec := serve(r, "/api/options")
	require.Equal(t, http.StatusOK, rec.Code)

	var choices app.FilterChoices
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &choices))
	assert.Equal(t, []string{"Yes", "No"}, choices.Options.SmokingHistory)
	assert.Equal(t, []string{"Female", "Male"}, choices.Defaults.Sex)
}

func TestReportFormats(t *testing.T) {
	r := newTestRouter(staticLoader{ds: records()}, pipeline.SelectionRequest{})

	rec := serve(r, "/api/report")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "## Key Metrics")

	rec = serve(r, "/api/report?format=html")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")

	rec = serve(r, "/api/report?format=docx")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExport(t *testing.T) {
	r := newTestRouter(staticLoader{ds: records()}, pipeline.SelectionRequest{})

	rec := serve(r, "/api/export.xlsx")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), ".xlsx")
	assert.NotZero(t, rec.Body.Len())
}

func TestErrors(t *testing.T) {
	r := newTestRouter(staticLoader{err: errors.DataFormat("missing required columns: BMI")}, pipeline.SelectionRequest{})

	rec := serve(r, "/api/summary")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, errors.CodeDataFormat, body["code"])
	assert.Contains(t, body["error"], "missing required columns")

	assert.Equal(t, http.StatusOK, serve(r, "/healthz").Code)
}
