// Package excel writes diagnosis history into an .xlsx workbook for the
// admin side: one summary sheet and one row per diagnosis.
package excel

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"opsdiag/models"

	"github.com/xuri/excelize/v2"
)

const (
	summarySheet   = "Summary"
	diagnosisSheet = "Diagnoses"
)

// Exporter writes diagnosis workbooks into a fixed directory.
type Exporter struct {
	dir     string
	maxRows int
}

// NewExporter creates an exporter writing into dir. maxRows of 0 means
// unlimited.
func NewExporter(dir string, maxRows int) *Exporter {
	return &Exporter{dir: dir, maxRows: maxRows}
}

// Export writes the workbook and returns its path.
func (e *Exporter) Export(records []*models.DiagnosisRecord, submissions map[string]*models.Submission) (string, error) {
	if e.maxRows > 0 && len(records) > e.maxRows {
		records = records[:e.maxRows]
	}

	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", summarySheet)
	if _, err := f.NewSheet(diagnosisSheet); err != nil {
		return "", fmt.Errorf("creating sheet: %w", err)
	}

	if err := e.writeSummary(f, records); err != nil {
		return "", err
	}
	if err := e.writeDiagnoses(f, records, submissions); err != nil {
		return "", err
	}

	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("creating export dir: %w", err)
	}
	path := filepath.Join(e.dir, fmt.Sprintf("diagnoses_%s.xlsx", time.Now().Format("20060102_150405")))
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("saving workbook: %w", err)
	}
	return path, nil
}

func (e *Exporter) writeSummary(f *excelize.File, records []*models.DiagnosisRecord) error {
	trackCounts := map[string]int{}
	patternCounts := map[string]int{}
	var totalMid int64
	for _, r := range records {
		trackCounts[r.Track]++
		patternCounts[r.PrimaryName]++
		totalMid += int64(r.AnnualCostMid)
	}

	rows := [][]interface{}{
		{"Diagnoses", len(records)},
		{"Track A", trackCounts["A"]},
		{"Track B", trackCounts["B"]},
	}
	if len(records) > 0 {
		rows = append(rows, []interface{}{"Mean mid annual cost", totalMid / int64(len(records))})
	}
	rows = append(rows, []interface{}{})
	rows = append(rows, []interface{}{"Primary pattern", "Count"})
	for name, count := range patternCounts {
		rows = append(rows, []interface{}{name, count})
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func (e *Exporter) writeDiagnoses(f *excelize.File, records []*models.DiagnosisRecord, submissions map[string]*models.Submission) error {
	header := []interface{}{
		"Diagnosis ID", "Client", "Email", "Track",
		"Primary pattern", "Primary score", "Secondary pattern",
		"Hourly rate", "Waste hours (min)", "Waste hours (max)",
		"Annual cost (low)", "Annual cost (mid)", "Annual cost (high)",
		"Turnover", "Team idle", "Leakage", "Growth blocked",
		"Trapped scale", "Created",
	}
	if err := f.SetSheetRow(diagnosisSheet, "A1", &header); err != nil {
		return err
	}

	for i, r := range records {
		clientName, clientEmail := "", ""
		if sub, ok := submissions[r.SubmissionID.String()]; ok {
			clientName = sub.ClientName
			clientEmail = sub.ClientEmail
		}
		secondary := ""
		if r.SecondaryKey != nil {
			secondary = *r.SecondaryKey
		}

		row := []interface{}{
			r.ID.String(), clientName, clientEmail, r.Track,
			r.PrimaryName, r.PrimaryScore, secondary,
			r.HourlyRate, r.WasteHoursMin, r.WasteHoursMax,
			r.AnnualCostLow, r.AnnualCostMid, r.AnnualCostHigh,
			r.TurnoverCost, r.TeamIdleCost, r.RevenueLeakage, r.GrowthBlocked,
			r.TrappedScale, r.CreatedAt.Format(time.RFC3339),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(diagnosisSheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
