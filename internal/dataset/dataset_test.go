package dataset

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/rikki233752/blink-script-ai-sub000/internal/types"
)

func writeSheet(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, r := range rows {
		cellName, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow("Sheet1", cellName, &r); err != nil {
			t.Fatal(err)
		}
	}
	path := filepath.Join(t.TempDir(), "calls.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeSheet(t, [][]interface{}{
		{"Inbound Call ID", "Caller ID", "Campaign", "Publisher", "Call Date", "Duration", "Recording URL", "Transcript"},
		{"c-1", "+15550001", "Medicare", "pub-a", "2025-11-03 10:15:00", "2:05", "https://rec.example.com/1.mp3", ""},
		{"c-2", "+15550002", "Medicare", "pub-b", "11/04/2025", "95", "", "Agent: Hello.\nCustomer: Hi."},
		{"c-3", "+15550003", "ACA", "pub-a", "garbage", "n/a", "not-a-link", ""},
		{"", "+15550004", "ACA", "pub-a", "", "", "http://rec.example.com/4.wav", ""},
	})

	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d records: %+v", len(got), got)
	}
	first := got[0]
	if first.CallID != "c-1" || first.CallerID != "+15550001" || first.Campaign != "Medicare" || first.Publisher != "pub-a" {
		t.Errorf("first = %+v", first)
	}
	if first.DurationSec != 125 || !first.HasRecording() {
		t.Errorf("first duration/recording = %d %q", first.DurationSec, first.RecordingURL)
	}
	if want := time.Date(2025, 11, 3, 10, 15, 0, 0, time.UTC); !first.CallDate.Equal(want) {
		t.Errorf("call date = %v", first.CallDate)
	}
	if got[1].Transcript == "" || got[1].HasRecording() || got[1].DurationSec != 95 {
		t.Errorf("transcript row = %+v", got[1])
	}
	if got[2].CallID != "row-5" {
		t.Errorf("generated call id = %q", got[2].CallID)
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.xlsx")); err == nil {
		t.Error("missing file loaded")
	}
	if _, err := Load(writeSheet(t, [][]interface{}{{"Call ID"}})); err == nil {
		t.Error("header-only sheet loaded")
	}
	if _, err := Load(writeSheet(t, [][]interface{}{{"Call ID", "Campaign"}, {"c-1", "x"}})); err == nil {
		t.Error("sheet without recording or transcript column loaded")
	}
}

func TestDetectColumns(t *testing.T) {
	c := detectColumns([]string{"Caller ID", "Call ID", "Audio Link", "Call Length", "Timestamp", "Transcription"})
	if c.caller != 0 || c.callID != 1 || c.recording != 2 || c.duration != 3 || c.date != 4 || c.transcript != 5 {
		t.Errorf("columns = %+v", c)
	}
}

func TestParseDuration(t *testing.T) {
	tests := map[string]int{"": 0, "42": 42, "42.9": 42, "1:30": 90, "1:00:05": 3605, "abc": 0, "1:x": 0, "-5": 0}
	for in, want := range tests {
		if got := parseDuration(in); got != want {
			t.Errorf("parseDuration(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestSummarize(t *testing.T) {
	d1 := time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2025, 11, 9, 0, 0, 0, 0, time.UTC)
	ds := Summarize([]types.CallRecord{
		{CallID: "a", Campaign: "Medicare", Publisher: "p1", DurationSec: 60, CallDate: d2, RecordingURL: "https://x/1.mp3"},
		{CallID: "b", Campaign: "Medicare", Publisher: "p2", DurationSec: 120, CallDate: d1, Transcript: "Agent: Hi."},
		{CallID: "c", Campaign: "ACA"},
	})
	if ds.TotalCalls != 3 || ds.WithRecording != 1 || ds.WithTranscript != 1 {
		t.Errorf("counts = %+v", ds)
	}
	if ds.AvgDurationSec != 90 || ds.ByCampaign["Medicare"] != 2 {
		t.Errorf("aggregates = %+v", ds)
	}
	if len(ds.TopCampaigns) != 2 || ds.TopCampaigns[0] != "Medicare" {
		t.Errorf("top campaigns = %q", ds.TopCampaigns)
	}
	if !ds.FirstCall.Equal(d1) || !ds.LastCall.Equal(d2) {
		t.Errorf("range = %v..%v", ds.FirstCall, ds.LastCall)
	}
}

func TestWriteReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	analyses := []types.CallAnalysis{{
		CallID:      "c-1",
		AnalyzedAt:  time.Date(2025, 12, 1, 9, 0, 0, 0, time.UTC),
		Intent:      types.IntentAnalysis{Primary: types.IntentSales, Confidence: 90},
		Disposition: types.DispositionAnalysis{Disposition: types.DispositionConverted, Confidence: 85},
		Conversion:  types.EnhancedBusinessConversion{Stage: types.StagePurchase, ConversionAchieved: true, RiskFactors: []string{"a", "b"}},
		Scoring:     types.PreciseScoring{OverallScore: 81, OverallRating: types.RatingGood},
	}}
	if err := WriteReport(path, analyses); err != nil {
		t.Fatal(err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, err := f.GetRows(reportSheet)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 || rows[0][0] != "Call ID" {
		t.Fatalf("rows = %q", rows)
	}
	r := rows[1]
	if r[0] != "c-1" || r[2] != "SALES" || r[7] != "purchase" || r[8] != "TRUE" || r[11] != "81" || r[13] != "a; b" {
		t.Errorf("row = %q", r)
	}
}
