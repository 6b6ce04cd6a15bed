package extractor

import (
	"strings"
	"testing"

	"github.com/rikki233752/blink-script-ai-sub000/internal/types"
)

func u(s types.Speaker, text string) types.Utterance {
	return types.Utterance{Speaker: s, Text: text}
}

func TestEligibilityStatements(t *testing.T) {
	text := "Hello there. You qualify for a $150 grocery allowance. " +
		"You are eligible for the Medicare Advantage plan. " +
		"Your benefit includes a dental program too. The weather is nice."
	got := Default.EligibilityStatements(text)
	if len(got) != 2 {
		t.Fatalf("got %d statements, want 2: %q", len(got), got)
	}
	if got[0] != "You qualify for a $150 grocery allowance." {
		t.Errorf("first = %q", got[0])
	}
	if got := Default.EligibilityStatements("Nothing relevant here."); got == nil || len(got) != 0 {
		t.Errorf("no match should be empty, got %#v", got)
	}
}

func TestKeyFacts(t *testing.T) {
	text := "Agent: Hi Maria, that's $25.00 a month. Call 555-123-4567 or email help@example.com. " +
		"Customer: Thanks. Agent: Maria, I'll call you tomorrow."
	facts := Default.KeyFacts(text)
	kinds := map[string]string{}
	for _, f := range facts {
		if _, dup := kinds[f.Kind]; dup {
			t.Errorf("kind %q reported twice", f.Kind)
		}
		kinds[f.Kind] = f.Text
	}
	for _, k := range []string{"amount", "phone", "email", "name", "time"} {
		if _, ok := kinds[k]; !ok {
			t.Errorf("missing %q fact in %+v", k, facts)
		}
	}
	if !strings.Contains(kinds["name"], "Maria") {
		t.Errorf("name fact = %q", kinds["name"])
	}
	if strings.Contains(kinds["name"], "Agent") {
		t.Errorf("speaker label treated as a name: %q", kinds["name"])
	}
}

func TestDollarAmounts(t *testing.T) {
	got := DollarAmounts("It was $1,200.50 then $15,000 and $9")
	want := []float64{1200.50, 15000, 9}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("amount %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestConversionSignals_Tiers(t *testing.T) {
	tests := []struct {
		name    string
		utts    []types.Utterance
		score   int
		counts  types.TierCounts
		objects int
	}{
		{
			name:   "strong positive",
			utts:   []types.Utterance{u(types.SpeakerCustomer, "I'll take it, sign me up, where do I sign?")},
			score:  30,
			counts: types.TierCounts{StrongPositive: 3},
		},
		{
			name: "strong negative",
			utts: []types.Utterance{
				u(types.SpeakerAgent, "Thank you for calling."),
				u(types.SpeakerCustomer, "Not interested, remove me from your list."),
			},
			score:   -20,
			counts:  types.TierCounts{StrongNegative: 2},
			objects: 1,
		},
		{
			name:   "contained phrase counted once",
			utts:   []types.Utterance{u(types.SpeakerCustomer, "Maybe later.")},
			score:  -5,
			counts: types.TierCounts{Negative: 1},
		},
		{
			name:  "agent lines do not move the score",
			utts:  []types.Utterance{u(types.SpeakerAgent, "Sounds good, would you like to enroll?")},
			score: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Default.ConversionSignals(tt.utts)
			if r.Score != tt.score {
				t.Errorf("score = %d, want %d", r.Score, tt.score)
			}
			if r.Counts != tt.counts {
				t.Errorf("counts = %+v, want %+v", r.Counts, tt.counts)
			}
			if r.Effect.Objections != tt.objects {
				t.Errorf("objections = %d, want %d", r.Effect.Objections, tt.objects)
			}
		})
	}
}

func TestConversionSignals_AgentEffectiveness(t *testing.T) {
	utts := []types.Utterance{
		u(types.SpeakerAgent, "You'll save money and get additional benefits at no cost."),
		u(types.SpeakerCustomer, "It's too expensive."),
		u(types.SpeakerAgent, "I understand. Would you like to enroll? It's a limited time offer, the deadline is Friday."),
		u(types.SpeakerCustomer, "I'm not sure."),
		u(types.SpeakerCustomer, "Okay."),
	}
	r := Default.ConversionSignals(utts)
	e := r.Effect
	if e.ClosingAttempts != 1 {
		t.Errorf("closing = %d, want 1", e.ClosingAttempts)
	}
	// three value phrases: round(3/2) = 2
	if e.ValueProposition != 2 {
		t.Errorf("value = %d, want 2", e.ValueProposition)
	}
	// two urgency phrases: round(2/1.5) = 1
	if e.UrgencyCreation != 1 {
		t.Errorf("urgency = %d, want 1", e.UrgencyCreation)
	}
	// two objections, only the first answered by the agent
	if e.Objections != 2 || e.ObjectionReplies != 1 || e.ObjectionHandling != 5 {
		t.Errorf("objection handling = %+v", e)
	}
}

func TestConversionSignals_NoObjectionsDefault(t *testing.T) {
	r := Default.ConversionSignals(nil)
	if r.Effect.ObjectionHandling != 5 || r.Score != 0 {
		t.Errorf("empty report = %+v", r)
	}
}

func TestRiskFactors(t *testing.T) {
	got := Default.RiskFactors("It's too expensive and I need to talk to my wife. I already have a plan.", -0.4, 3)
	want := []string{RiskPrice, RiskCompetitor, RiskDecision, RiskSentiment, RiskManySignals}
	if len(got) != len(want) {
		t.Fatalf("got %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("risk %d = %q, want %q", i, got[i], want[i])
		}
	}
	if got := Default.RiskFactors("", 0, 0); len(got) != 0 {
		t.Errorf("no risks expected, got %q", got)
	}
}

func TestActionItems(t *testing.T) {
	utts := []types.Utterance{
		u(types.SpeakerAgent, "I'll send you the enrollment packet tomorrow. Anything else?"),
		u(types.SpeakerCustomer, "I'll check with my doctor."),
		u(types.SpeakerAgent, "Great."),
	}
	got := Default.ActionItems(utts)
	if len(got) != 2 {
		t.Fatalf("got %d items: %+v", len(got), got)
	}
	if got[0].Owner != types.SpeakerAgent || got[0].Due != "tomorrow" {
		t.Errorf("agent item = %+v", got[0])
	}
	if got[1].Owner != types.SpeakerCustomer {
		t.Errorf("customer item = %+v", got[1])
	}
}

func TestTopics(t *testing.T) {
	got := Default.Topics("We talked about your Medicare Part D prescription coverage and the pharmacy.")
	if len(got) == 0 {
		t.Fatal("no topics")
	}
	if got[0].Name != "Prescriptions" && got[0].Name != "Medicare coverage" {
		t.Errorf("top topic = %q", got[0].Name)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Hits > got[i-1].Hits {
			t.Errorf("topics not sorted: %+v", got)
		}
	}
}

func TestTalkMetrics(t *testing.T) {
	utts := []types.Utterance{
		{Speaker: types.SpeakerAgent, Text: "one two three", Start: 0, End: 2, Timing: types.TimingMeasured},
		{Speaker: types.SpeakerCustomer, Text: "four", Start: 1.5, End: 3, Timing: types.TimingMeasured},
		{Speaker: types.SpeakerAgent, Text: "five two three four five six", Start: 8, End: 10, Timing: types.TimingMeasured},
	}
	k := TalkMetrics(utts)
	if k.AgentTalkRatio != 0.9 || k.CustomerTalkRatio != 0.1 {
		t.Errorf("ratios = %v / %v", k.AgentTalkRatio, k.CustomerTalkRatio)
	}
	if k.InterruptionCount != 1 {
		t.Errorf("interruptions = %d", k.InterruptionCount)
	}
	if k.SilenceSeconds != 5 {
		t.Errorf("silence = %d", k.SilenceSeconds)
	}
}
