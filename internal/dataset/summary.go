package dataset

import (
	"sort"
	"time"

	"github.com/rikki233752/blink-script-ai-sub000/internal/logger"
	"github.com/rikki233752/blink-script-ai-sub000/internal/types"
)

// maxExamples caps the example rows kept for display.
const maxExamples = 5

type DatasetSummary struct {
	TotalCalls     int            `json:"total_calls"`
	WithRecording  int            `json:"with_recording"`
	WithTranscript int            `json:"with_transcript"`
	ByCampaign     map[string]int `json:"by_campaign"`
	ByPublisher    map[string]int `json:"by_publisher"`
	TopCampaigns   []string       `json:"top_campaigns"`
	AvgDurationSec float64        `json:"avg_duration_sec"`
	FirstCall      *time.Time     `json:"first_call,omitempty"`
	LastCall       *time.Time     `json:"last_call,omitempty"`
	ExampleCallIDs []string       `json:"example_call_ids"`
}

// Summarize produces a compact overview of loaded call records.
func Summarize(records []types.CallRecord) DatasetSummary {
	log := logger.New().WithField("component", "dataset.summary")

	ds := DatasetSummary{
		TotalCalls:     len(records),
		ByCampaign:     map[string]int{},
		ByPublisher:    map[string]int{},
		ExampleCallIDs: []string{},
	}
	durTotal, durCount := 0, 0
	for _, r := range records {
		if r.HasRecording() {
			ds.WithRecording++
		}
		if r.Transcript != "" {
			ds.WithTranscript++
		}
		if r.Campaign != "" {
			ds.ByCampaign[r.Campaign]++
		}
		if r.Publisher != "" {
			ds.ByPublisher[r.Publisher]++
		}
		if r.DurationSec > 0 {
			durTotal += r.DurationSec
			durCount++
		}
		if !r.CallDate.IsZero() {
			d := r.CallDate
			if ds.FirstCall == nil || d.Before(*ds.FirstCall) {
				ds.FirstCall = &d
			}
			if ds.LastCall == nil || d.After(*ds.LastCall) {
				ds.LastCall = &d
			}
		}
		if len(ds.ExampleCallIDs) < maxExamples {
			ds.ExampleCallIDs = append(ds.ExampleCallIDs, r.CallID)
		}
	}
	if durCount > 0 {
		ds.AvgDurationSec = float64(durTotal) / float64(durCount)
	}

	type pc struct {
		name  string
		count int
	}
	var arr []pc
	for k, v := range ds.ByCampaign {
		arr = append(arr, pc{k, v})
	}
	sort.Slice(arr, func(i, j int) bool {
		if arr[i].count != arr[j].count {
			return arr[i].count > arr[j].count
		}
		return arr[i].name < arr[j].name
	})
	ds.TopCampaigns = []string{}
	for i := 0; i < len(arr) && i < 3; i++ {
		ds.TopCampaigns = append(ds.TopCampaigns, arr[i].name)
	}

	log.WithField("total_calls", ds.TotalCalls).WithField("campaigns", len(ds.ByCampaign)).Debug("dataset summarization complete")
	return ds
}
