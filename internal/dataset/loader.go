package dataset

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/rikki233752/blink-script-ai-sub000/internal/types"
)

type columns struct {
	callID, recording, caller, campaign, publisher, duration, date, transcript int
}

// detectColumns maps header cells to record fields. Order matters:
// "Caller ID" must not be taken as the call id and "Recording URL" must not
// be taken as a generic url column twice.
func detectColumns(header []string) columns {
	c := columns{-1, -1, -1, -1, -1, -1, -1, -1}
	set := func(idx *int, i int) {
		if *idx == -1 {
			*idx = i
		}
	}
	for i, h := range header {
		l := strings.ToLower(strings.TrimSpace(h))
		switch {
		case strings.Contains(l, "transcript") || strings.Contains(l, "transcription"):
			set(&c.transcript, i)
		case strings.Contains(l, "record") || strings.Contains(l, "audio") || strings.Contains(l, "url") || strings.Contains(l, "link"):
			set(&c.recording, i)
		case strings.Contains(l, "caller") || strings.Contains(l, "phone") || strings.Contains(l, "number") || l == "inbound":
			set(&c.caller, i)
		case strings.Contains(l, "campaign"):
			set(&c.campaign, i)
		case strings.Contains(l, "publisher") || strings.Contains(l, "source"):
			set(&c.publisher, i)
		case strings.Contains(l, "duration") || strings.Contains(l, "length") || strings.Contains(l, "seconds"):
			set(&c.duration, i)
		case strings.Contains(l, "date") || strings.Contains(l, "time"):
			set(&c.date, i)
		case strings.Contains(l, "call id") || strings.Contains(l, "callid") || strings.Contains(l, "call_id") || l == "id" || strings.HasSuffix(l, " id"):
			set(&c.callID, i)
		}
	}
	return c
}

func cell(r []string, idx int) string {
	if idx >= 0 && idx < len(r) {
		return strings.TrimSpace(r[idx])
	}
	return ""
}

// Load reads the first sheet of a call-log export. Rows with neither an
// http(s) recording link nor a transcript are skipped.
func Load(path string) ([]types.CallRecord, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) <= 1 {
		return nil, fmt.Errorf("no data rows")
	}

	cols := detectColumns(rows[0])
	if cols.recording == -1 && cols.transcript == -1 {
		return nil, fmt.Errorf("no recording or transcript column in header %q", rows[0])
	}

	var out []types.CallRecord
	for i, r := range rows[1:] {
		rec := types.CallRecord{
			CallID:       cell(r, cols.callID),
			RecordingURL: cell(r, cols.recording),
			CallerID:     cell(r, cols.caller),
			Campaign:     cell(r, cols.campaign),
			Publisher:    cell(r, cols.publisher),
			DurationSec:  parseDuration(cell(r, cols.duration)),
			CallDate:     parseDate(cell(r, cols.date)),
			Transcript:   cell(r, cols.transcript),
		}
		if !rec.HasRecording() {
			rec.RecordingURL = ""
			if rec.Transcript == "" {
				continue
			}
		}
		if rec.CallID == "" {
			rec.CallID = fmt.Sprintf("row-%d", i+2)
		}
		out = append(out, rec)
	}
	return out, nil
}

// parseDuration accepts plain seconds, mm:ss and hh:mm:ss. Anything else
// is zero.
func parseDuration(s string) int {
	if s == "" {
		return 0
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return max(0, int(f))
	}
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0
	}
	total := 0
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 {
			return 0
		}
		total = total*60 + n
	}
	return total
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"01/02/2006 15:04:05",
	"01/02/2006 03:04:05 PM",
	"01/02/2006 15:04",
	"01/02/2006",
	"1/2/06 15:04",
	"01-02-06",
}

// parseDate returns the zero time for unparsable values.
func parseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
