package dataset

import (
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/rikki233752/blink-script-ai-sub000/internal/types"
)

const reportSheet = "Analysis"

var reportHeader = []string{
	"Call ID", "Analyzed At", "Primary Intent", "Intent Confidence", "Disposition",
	"Disposition Confidence", "Sentiment", "Conversion Stage", "Conversion Achieved",
	"Conversion Confidence", "Deal Value", "Overall Score", "Rating", "Risk Factors",
	"Next Best Action", "Summary",
}

// WriteReport writes one row per analysis to an xlsx file at path.
func WriteReport(path string, analyses []types.CallAnalysis) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", reportSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}

	header := make([]interface{}, len(reportHeader))
	for i, h := range reportHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(reportSheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	last, _ := excelize.CoordinatesToCellName(len(reportHeader), 1)
	if err := f.SetCellStyle(reportSheet, "A1", last, bold); err != nil {
		return fmt.Errorf("style header: %w", err)
	}

	for i, a := range analyses {
		row := []interface{}{
			a.CallID,
			a.AnalyzedAt.Format(time.RFC3339),
			string(a.Intent.Primary),
			a.Intent.Confidence,
			string(a.Disposition.Disposition),
			a.Disposition.Confidence,
			string(a.Sentiment.Overall),
			a.Conversion.Stage.String(),
			a.Conversion.ConversionAchieved,
			a.Conversion.Confidence,
			a.Conversion.EstimatedValue.Value,
			a.Scoring.OverallScore,
			string(a.Scoring.OverallRating),
			strings.Join(a.Conversion.RiskFactors, "; "),
			a.Conversion.NextBestAction,
			a.Summary.ShortSummary,
		}
		start, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(reportSheet, start, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save report: %w", err)
	}
	return nil
}
