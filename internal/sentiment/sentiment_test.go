package sentiment

import (
	"math"
	"testing"

	"github.com/rikki233752/blink-script-ai-sub000/internal/types"
)

func TestAnalyze_Polarity(t *testing.T) {
	tests := []struct {
		name       string
		transcript string
		want       types.SentimentLabel
	}{
		{"positive", "Agent: Great news, you qualify.\nCustomer: That's wonderful, thank you so much!", types.SentimentPositive},
		{"negative", "Customer: This is ridiculous, the worst service. I'm so frustrated.", types.SentimentNegative},
		{"negation flips", "Customer: I am not happy and not satisfied.", types.SentimentNegative},
		{"neutral", "Agent: Your plan number is on the card.", types.SentimentNeutral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Analyze(tt.transcript)
			if got.Overall != tt.want {
				t.Fatalf("Overall = %q (score %v), want %q", got.Overall, got.Score, tt.want)
			}
			if got.Score < -1 || got.Score > 1 {
				t.Errorf("score %v outside [-1,1]", got.Score)
			}
			if got.Confidence < 0 || got.Confidence > 95 {
				t.Errorf("confidence %d outside [0,95]", got.Confidence)
			}
		})
	}
}

func TestAnalyze_PerSpeaker(t *testing.T) {
	got := Analyze("Agent: I'm glad to help, that's great.\nCustomer: This is terrible, I'm angry.")
	if got.AgentScore <= 0 {
		t.Errorf("agent score = %v, want > 0", got.AgentScore)
	}
	if got.CustomerScore >= 0 {
		t.Errorf("customer score = %v, want < 0", got.CustomerScore)
	}
	if len(got.Segments) != 2 {
		t.Fatalf("segments = %d, want 2", len(got.Segments))
	}
	if got.Segments[1].Sentiment != types.SentimentNegative {
		t.Errorf("second segment = %q", got.Segments[1].Sentiment)
	}
}

func TestAnalyze_FrustrationPhrases(t *testing.T) {
	got := Analyze("Customer: I already told you, this is a waste of my time.")
	if len(got.Frustration) != 2 {
		t.Errorf("frustration = %v, want 2 phrases", got.Frustration)
	}
	if got.Overall != types.SentimentNegative {
		t.Errorf("overall = %q", got.Overall)
	}
}

func TestAnalyze_Empty(t *testing.T) {
	got := Analyze("")
	if got.Overall != types.SentimentNeutral || got.Score != 0 || got.Confidence != 50 {
		t.Errorf("empty = %+v", got)
	}
}

func TestAverage(t *testing.T) {
	if Average(nil) != 0 {
		t.Error("average of nothing should be 0")
	}
	segs := []types.SentimentSegment{{Score: -0.5}, {Score: -0.1}}
	if got := Average(segs); math.Abs(got+0.3) > 1e-9 {
		t.Errorf("Average = %v, want -0.3", got)
	}
}
