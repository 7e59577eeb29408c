package report

import (
	"bytes"
	"regexp"
	"strings"
	"testing"
	"time"

	"cardiodash/domain/cardio"
	"cardiodash/internal/pipeline"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleSummary(t *testing.T, sel func(*cardio.Dataset) cardio.FilterSelection) *pipeline.Summary {
	t.Helper()
	ds := cardio.NewDataset([]cardio.Record{
		{AgeCategory: "18-24", Sex: "Male", SmokingHistory: "No", HeartDisease: "No", Checkup: "Within the past year", BMI: 22, Exercise: "Yes", Diabetes: "No", Arthritis: "No", Depression: "No"},
		{AgeCategory: "18-24", Sex: "Female", SmokingHistory: "No", HeartDisease: "Yes", Checkup: "Never", BMI: 30, Exercise: "No", Diabetes: "Yes", Arthritis: "No", Depression: "Yes"},
	})
	ds.Source = "survey.csv"
	ds.LoadID = "load-1"
	return pipeline.Summarize(ds, sel(ds), pipeline.DefaultOptions())
}

func TestMarkdown(t *testing.T) {
	md := Markdown(sampleSummary(t, pipeline.DefaultSelection))

	assert.Contains(t, md, "# Cardiovascular Risk Dashboard")
	assert.Contains(t, md, "| Total Participants | 2 |")
	assert.Contains(t, md, "| Heart Disease Prevalence | 50.00% |")
	assert.Contains(t, md, "| Average BMI | 26.0 |")
	assert.Contains(t, md, "| 18-24 | 2 | 50.0 |")
	assert.Contains(t, md, "| 80+ | 0 | 0.0 |")
	assert.Contains(t, md, "### Smoking History")
	assert.Contains(t, md, "- **Sex:** Female, Male")
	assert.Contains(t, md, "## BMI Distribution")
}

func TestMarkdownEmptyView(t *testing.T) {
	md := Markdown(sampleSummary(t, func(ds *cardio.Dataset) cardio.FilterSelection {
		return pipeline.SelectionRequest{Sex: pipeline.Only()}.Resolve(ds)
	}))

	assert.Contains(t, md, "| Average BMI | n/a |")
	assert.Contains(t, md, "| Heart Disease Prevalence | 0.00% |")
	assert.Contains(t, md, "- **Sex:** none selected")
	assert.Contains(t, md, "No BMI values in the current selection.")
	assert.Contains(t, md, "Association with heart disease: n/a")
}

func TestHTML(t *testing.T) {
	out := string(HTML(sampleSummary(t, pipeline.DefaultSelection)))

	assert.Contains(t, out, "<table>")
	assert.Regexp(t, regexp.MustCompile(`<h1[^>]*>Cardiovascular Risk Dashboard</h1>`), out)
	assert.Contains(t, out, "<code>survey.csv</code>")
}

func TestFormatCount(t *testing.T) {
	tests := map[int]string{0: "0", 999: "999", 1000: "1,000", 308854: "308,854", 1234567: "1,234,567", -4200: "-4,200"}
	for n, expected := range tests {
		assert.Equal(t, expected, FormatCount(n))
	}
}

func TestExportFilename(t *testing.T) {
	name := ExportFilename(time.Date(2025, 10, 15, 21, 12, 56, 0, time.UTC))

	assert.True(t, strings.HasPrefix(name, "cardio_summary_20251015_211256_"), name)
	assert.True(t, strings.HasSuffix(name, ".xlsx"))
	assert.NotEqual(t, name, ExportFilename(time.Date(2025, 10, 15, 21, 12, 56, 0, time.UTC)))
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, sampleSummary(t, pipeline.DefaultSelection)))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetKPIs, SheetAge, SheetSex, SheetRiskFactors}, f.GetSheetList())

	kpis, err := f.GetRows(SheetKPIs)
	require.NoError(t, err)
	assert.Equal(t, []string{"Total Participants", "2"}, kpis[1])
	assert.Equal(t, []string{"Average BMI", "26"}, kpis[4])

	age, err := f.GetRows(SheetAge)
	require.NoError(t, err)
	assert.Len(t, age, 14)
	assert.Equal(t, []string{"18-24", "2", "50"}, age[1])

	risk, err := f.GetRows(SheetRiskFactors)
	require.NoError(t, err)
	assert.Equal(t, "Exercise", risk[1][0])
}
