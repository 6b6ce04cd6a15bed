package speaker

import (
	"testing"

	"github.com/rikki233752/blink-script-ai-sub000/internal/types"
)

func intp(n int) *int { return &n }

func speakers(utts []types.Utterance) []types.Speaker {
	out := make([]types.Speaker, len(utts))
	for i, u := range utts {
		out[i] = u.Speaker
	}
	return out
}

func equalSpeakers(a, b []types.Speaker) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestParse_ExplicitLabelsRoundTrip(t *testing.T) {
	tests := []struct {
		name       string
		transcript string
		want       []types.Speaker
		texts      []string
	}{
		{
			name:       "one line per label",
			transcript: "Agent: Thank you for calling.\nCustomer: Not interested, remove me from your list.",
			want:       []types.Speaker{types.SpeakerAgent, types.SpeakerCustomer},
			texts:      []string{"Thank you for calling.", "Not interested, remove me from your list."},
		},
		{
			name:       "inline labels",
			transcript: "Agent: Thank you for calling. Customer: Not interested, remove me from your list.",
			want:       []types.Speaker{types.SpeakerAgent, types.SpeakerCustomer},
			texts:      []string{"Thank you for calling.", "Not interested, remove me from your list."},
		},
		{
			name: "labels survive contradicting text",
			// The validation pass would flip these if they were inferred.
			transcript: "Customer: Thank you for calling, this call may be recorded.\nAgent: Who is this? Stop calling me.",
			want:       []types.Speaker{types.SpeakerCustomer, types.SpeakerAgent},
			texts:      []string{"Thank you for calling, this call may be recorded.", "Who is this? Stop calling me."},
		},
		{
			name:       "caller and rep map to roles",
			transcript: "Rep: Hello.\nCaller: Hi there.",
			want:       []types.Speaker{types.SpeakerAgent, types.SpeakerCustomer},
			texts:      []string{"Hello.", "Hi there."},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.transcript, nil)
			if !equalSpeakers(speakers(got), tt.want) {
				t.Fatalf("speakers = %v, want %v", speakers(got), tt.want)
			}
			for i, u := range got {
				if u.Text != tt.texts[i] {
					t.Errorf("utterance %d text = %q, want %q", i, u.Text, tt.texts[i])
				}
				if u.Confidence != nil {
					t.Errorf("utterance %d was rewritten by validation", i)
				}
			}
		})
	}
}

func TestParse_GenericSpeakerLabels(t *testing.T) {
	transcript := "Speaker A: Hi, who is this?\nSpeaker B: Thank you for calling, my name is Sam, how can I help you?"
	got := Parse(transcript, nil)
	want := []types.Speaker{types.SpeakerCustomer, types.SpeakerAgent}
	if !equalSpeakers(speakers(got), want) {
		t.Fatalf("speakers = %v, want %v", speakers(got), want)
	}
	if got[0].Label != "speaker_a" || got[1].Label != "speaker_b" {
		t.Errorf("labels = %q, %q", got[0].Label, got[1].Label)
	}
}

func TestParse_DiarizedFirstUtteranceAgent(t *testing.T) {
	d := &types.Diarization{Utterances: []types.DiarizedUtterance{
		{Speaker: intp(0), Start: 0, End: 4, Transcript: "Thank you for calling the benefits center, my name is John", Confidence: 0.9},
		{Speaker: intp(1), Start: 4, End: 6, Transcript: "Hi, yes, I got a letter.", Confidence: 0.8},
		{Speaker: intp(0), Start: 6, End: 9, Transcript: "Great. Can you confirm your date of birth?", Confidence: 0.9},
		{Speaker: intp(1), Start: 9, End: 11, Transcript: "Sure, it's March 3rd.", Confidence: 0.85},
	}}
	got := Parse("ignored when diarization is present", d)
	want := []types.Speaker{types.SpeakerAgent, types.SpeakerCustomer, types.SpeakerAgent, types.SpeakerCustomer}
	if !equalSpeakers(speakers(got), want) {
		t.Fatalf("speakers = %v, want %v", speakers(got), want)
	}
	for _, u := range got {
		if u.Timing != types.TimingMeasured {
			t.Errorf("timing = %q, want measured", u.Timing)
		}
	}
}

func TestIdentify_CloseScoresFallBackToOpening(t *testing.T) {
	p := New(nil)
	lines := []Line{
		{Label: "speaker_0", Text: "Hi, you've reached the enrollment line."},
		{Label: "speaker_1", Text: "Let me check that for you."},
		{Label: "speaker_1", Text: "I understand."},
		{Label: "speaker_1", Text: "I completely understand."},
	}
	id := p.Identify(lines)
	if id.Scores["speaker_1"] <= id.Scores["speaker_0"] {
		t.Fatalf("expected speaker_1 to outscore speaker_0, got %v", id.Scores)
	}
	if id.Agent != "speaker_0" || !id.DecidedByOpening {
		t.Fatalf("agent = %q decidedByOpening = %v, want speaker_0 true", id.Agent, id.DecidedByOpening)
	}
	if id.Roles["speaker_1"] != types.SpeakerCustomer {
		t.Errorf("speaker_1 role = %q", id.Roles["speaker_1"])
	}
}

func TestParse_WordsRebuildUtterances(t *testing.T) {
	d := &types.Diarization{Words: []types.Word{
		{Word: "hello", PunctuatedWord: "Hello", Start: 0, End: 0.5, Confidence: 1, Speaker: intp(0)},
		{Word: "there", PunctuatedWord: "there.", Start: 0.6, End: 1.0, Confidence: 1, Speaker: intp(0)},
		{Word: "anyway", PunctuatedWord: "Anyway.", Start: 4.0, End: 4.4, Confidence: 1, Speaker: intp(0)},
		{Word: "hi", PunctuatedWord: "Hi.", Start: 4.5, End: 4.8, Confidence: 0.5, Speaker: intp(1)},
	}}
	got := Parse("", d)
	wantTexts := []string{"Hello there.", "Anyway.", "Hi."}
	if len(got) != len(wantTexts) {
		t.Fatalf("got %d utterances, want %d: %+v", len(got), len(wantTexts), got)
	}
	for i, w := range wantTexts {
		if got[i].Text != w {
			t.Errorf("utterance %d = %q, want %q", i, got[i].Text, w)
		}
	}
	if got[0].Label != got[1].Label {
		t.Errorf("gap split changed speaker label: %q vs %q", got[0].Label, got[1].Label)
	}
	if got[0].Start != 0 || got[0].End != 1.0 {
		t.Errorf("first utterance span = %v-%v", got[0].Start, got[0].End)
	}
}

func TestParse_Prose(t *testing.T) {
	transcript := "Thank you for calling Acme benefits. How can I help you today? I got a letter about my plan."
	got := Parse(transcript, nil)
	want := []types.Speaker{types.SpeakerAgent, types.SpeakerAgent, types.SpeakerCustomer}
	if !equalSpeakers(speakers(got), want) {
		t.Fatalf("speakers = %v, want %v", speakers(got), want)
	}
	// len("Thank you for calling Acme benefits.") / 8 = 4.5
	if got[1].Start != 4.5 {
		t.Errorf("second sentence start = %v, want 4.5", got[1].Start)
	}
	for _, u := range got {
		if u.Timing != types.TimingEstimated {
			t.Errorf("timing = %q, want estimated", u.Timing)
		}
		if d := u.End - u.Start; d < 3 || d > 20 {
			t.Errorf("duration %v outside [3,20]", d)
		}
	}
}

func TestParse_ValidationCorrectsProse(t *testing.T) {
	// The second sentence would default to Customer (agent asked a
	// question) but a licensed-agent statement is definitive.
	transcript := "Can you hear me? I'm a licensed agent."
	got := Parse(transcript, nil)
	if len(got) != 2 {
		t.Fatalf("got %d utterances", len(got))
	}
	if got[1].Speaker != types.SpeakerAgent {
		t.Fatalf("second speaker = %q, want Agent", got[1].Speaker)
	}
	if got[1].Confidence == nil || *got[1].Confidence != 0.95 {
		t.Errorf("corrected utterance confidence = %v, want 0.95", got[1].Confidence)
	}
}

func TestParse_Empty(t *testing.T) {
	for _, in := range []string{"", "   \n\t"} {
		got := Parse(in, nil)
		if got == nil || len(got) != 0 {
			t.Errorf("Parse(%q) = %#v, want empty non-nil slice", in, got)
		}
	}
	if got := Parse("", &types.Diarization{}); got == nil || len(got) != 0 {
		t.Errorf("empty diarization = %#v", got)
	}
}

func TestSplitSentences(t *testing.T) {
	got := splitSentences("One. Two?! Three")
	want := []string{"One.", "Two?!", "Three"}
	if len(got) != len(want) {
		t.Fatalf("got %q", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sentence %d = %q, want %q", i, got[i], want[i])
		}
	}
}
