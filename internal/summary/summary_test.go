package summary

import (
	"strings"
	"testing"

	"github.com/rikki233752/blink-script-ai-sub000/internal/types"
)

const benefitsCall = "Agent: Thank you for calling. You qualify for a $150 grocery allowance card. Are you currently in an enrollment plan?\n" +
	"Customer: I already have Medicare Part D coverage with a copay. My doctor and pharmacy are fine. I pay a premium every month and my bill is high.\n" +
	"Agent: I'll send you the enrollment packet tomorrow. Your plan starts in March."

func TestGenerate_Templates(t *testing.T) {
	s := Generate(Input{
		Transcript:  benefitsCall,
		Intent:      types.IntentAnalysis{Primary: types.IntentSales, Subcategory: "new_enrollment"},
		Disposition: types.DispositionAnalysis{Disposition: types.DispositionFollowUp},
		Sentiment:   types.SentimentAnalysis{Overall: types.SentimentNeutral},
	})
	for _, want := range []string{
		"existing enrollment status",
		"grocery allowance card",
		"Eligibility: You qualify for a $150 grocery allowance card.",
		"March",
	} {
		if !strings.Contains(s.ExecutiveSummary, want) {
			t.Errorf("executive summary missing %q:\n%s", want, s.ExecutiveSummary)
		}
	}
	if s.ShortSummary != "Sales call (new enrollment) ended as FOLLOW_UP with neutral customer sentiment." {
		t.Errorf("short summary = %q", s.ShortSummary)
	}
	if s.CallConclusion != conclusions[types.DispositionFollowUp] {
		t.Errorf("conclusion = %q", s.CallConclusion)
	}
	if len(s.TopicsCovered) == 0 || len(s.TopicsCovered) > MaxTopics {
		t.Errorf("topics = %q", s.TopicsCovered)
	}
	if len(s.ActionItems) == 0 || s.ActionItems[0].Due != "tomorrow" {
		t.Errorf("action items = %+v", s.ActionItems)
	}
}

func TestGenerate_Caps(t *testing.T) {
	texts := []string{
		"Customer lives in Ohio", "Prefers morning calls", "Has two dependents",
		"Retired teacher", "Uses a mail-order pharmacy", "Wants dental coverage",
		"Spouse handles finances", "Recently moved", "Sees a cardiologist",
		"Owns a smartphone", "Drives to appointments", "Veteran benefits on file",
	}
	var external []types.Fact
	for i, txt := range texts {
		external = append(external, types.Fact{Kind: "llm", Text: txt, Confidence: 40 + i})
	}
	conv := &types.EnhancedBusinessConversion{
		ConversionAchieved: true,
		EstimatedValue:     types.DealValue{Value: 150, Quoted: true},
		RiskFactors:        []string{"Price sensitivity detected", "Timeline concerns expressed", "Competitor or existing coverage mentioned", "Customer may not be the decision maker"},
		NextBestAction:     "Complete enrollment paperwork and send confirmation",
		Urgency:            types.UrgencyAssessment{FollowUp: "within 24 hours"},
	}
	s := Generate(Input{
		Transcript:  benefitsCall,
		Disposition: types.DispositionAnalysis{Disposition: types.DispositionConverted, NextSteps: []string{"Send the enrollment confirmation", "Schedule a welcome call", "Update the CRM with the sale"}},
		Sentiment:   types.SentimentAnalysis{Overall: types.SentimentNegative, Frustration: []string{"ridiculous"}},
		Conversion:  conv,
		Facts:       external,
	})
	if len(s.KeyTakeaways) != MaxTakeaways {
		t.Errorf("takeaways = %d", len(s.KeyTakeaways))
	}
	for i := 1; i < len(s.KeyTakeaways); i++ {
		if s.KeyTakeaways[i].Impact > s.KeyTakeaways[i-1].Impact {
			t.Errorf("takeaways not sorted: %+v", s.KeyTakeaways)
		}
	}
	if len(s.KeyFacts) != MaxFacts {
		t.Errorf("facts = %d", len(s.KeyFacts))
	}
	for i := 1; i < len(s.KeyFacts); i++ {
		if s.KeyFacts[i].Confidence > s.KeyFacts[i-1].Confidence {
			t.Errorf("facts not sorted: %+v", s.KeyFacts)
		}
	}
	if len(s.FollowUpItems) != MaxFollowUps {
		t.Errorf("follow-ups = %+v", s.FollowUpItems)
	}
	if len(s.RiskFactors) != 4 {
		t.Errorf("risk factors = %q", s.RiskFactors)
	}
}

func TestGenerate_DedupesNearDuplicates(t *testing.T) {
	s := Generate(Input{
		Transcript: "Agent: Hello.",
		Disposition: types.DispositionAnalysis{
			Disposition: types.DispositionConverted,
			NextSteps:   []string{"Send the enrollment confirmation", "Send the enrollment confirmation.", "Schedule a welcome call"},
		},
	})
	if len(s.FollowUpItems) != 2 {
		t.Errorf("follow-ups = %+v", s.FollowUpItems)
	}
}

func TestGenerate_Transferred(t *testing.T) {
	s := Generate(Input{
		Transcript:  "Agent: Let me transfer you to billing.",
		Disposition: types.DispositionAnalysis{Disposition: types.DispositionTransferred, TransferDepartment: "billing"},
	})
	if s.CallConclusion != "The customer was transferred to billing." {
		t.Errorf("conclusion = %q", s.CallConclusion)
	}
}

func TestGenerate_Empty(t *testing.T) {
	s := Generate(Input{})
	if s.TopicsCovered == nil || s.KeyFacts == nil || s.FollowUpItems == nil || s.KeyTakeaways == nil {
		t.Errorf("empty summary has nil lists: %+v", s)
	}
	if s.CallConclusion != "The outcome of the call could not be determined." {
		t.Errorf("conclusion = %q", s.CallConclusion)
	}
	if s.ShortSummary != "General call." {
		t.Errorf("short summary = %q", s.ShortSummary)
	}
}
