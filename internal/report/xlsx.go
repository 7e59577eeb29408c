package report

import (
	"fmt"
	"io"
	"time"

	"cardiodash/internal/pipeline"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// Sheet names of the exported workbook, in order
const (
	SheetKPIs        = "KPIs"
	SheetAge         = "Age Groups"
	SheetSex         = "Sex"
	SheetRiskFactors = "Risk Factors"
)

// ExportFilename returns a unique download name such as cardio_summary_20250101_120000_1a2b3c4d.xlsx
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("cardio_summary_%s_%s.xlsx", now.Format("20060102_150405"), uuid.New().String()[:8])
}

// WriteXLSX writes the summary tables as a workbook to w
func WriteXLSX(w io.Writer, s *pipeline.Summary) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetKPIs); err != nil {
		return err
	}

	avgBMI := interface{}(NotAvailable)
	if s.KPIs.AverageBMI != nil {
		avgBMI = *s.KPIs.AverageBMI
	}
	medianBMI := interface{}(NotAvailable)
	if s.KPIs.MedianBMI != nil {
		medianBMI = *s.KPIs.MedianBMI
	}
	kpiRows := [][]interface{}{
		{"Metric", "Value"},
		{"Total Participants", s.KPIs.Total},
		{"Heart Disease Prevalence %", s.KPIs.HeartDiseaseRate},
		{"Recent Checkup Rate %", s.KPIs.RecentCheckupRate},
		{"Average BMI", avgBMI},
		{"Median BMI", medianBMI},
		{"Source", s.Dataset.Source},
		{"Load ID", s.Dataset.LoadID},
	}
	if err := writeRows(f, SheetKPIs, kpiRows); err != nil {
		return err
	}

	ageRows := [][]interface{}{{"Age Group", "Participants", "Heart Disease %"}}
	for i, e := range s.AgeCounts.Entries {
		ageRows = append(ageRows, []interface{}{e.Key, e.Count, s.AgeRates.Entries[i].Rate})
	}
	if err := writeSheet(f, SheetAge, ageRows); err != nil {
		return err
	}

	sexRows := [][]interface{}{{"Sex", "Participants", "Heart Disease %"}}
	for i, e := range s.SexCounts.Entries {
		sexRows = append(sexRows, []interface{}{e.Key, e.Count, s.SexRates.Entries[i].Rate})
	}
	if err := writeSheet(f, SheetSex, sexRows); err != nil {
		return err
	}

	riskRows := [][]interface{}{{"Factor", "Value", "Participants", "Heart Disease Cases", "Heart Disease %", "p-value"}}
	for i, table := range s.RiskFactors {
		pValue := interface{}(NotAvailable)
		if i < len(s.Associations) && s.Associations[i].Valid {
			pValue = s.Associations[i].PValue
		}
		for _, e := range table.Entries {
			riskRows = append(riskRows, []interface{}{table.Label, e.Key, e.Count, e.Positive, e.Rate, pValue})
		}
	}
	if err := writeSheet(f, SheetRiskFactors, riskRows); err != nil {
		return err
	}

	_, err := f.WriteTo(w)
	return err
}

func writeSheet(f *excelize.File, sheet string, rows [][]interface{}) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	return writeRows(f, sheet, rows)
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for r, row := range rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}
	return nil
}
