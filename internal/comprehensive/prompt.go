package comprehensive

import "fmt"

// BuildPrompt builds the strict-JSON prompt for one transcript.
func BuildPrompt(transcript string) string {
	prompt := `You are an expert call quality and sales outcome analyst for a benefits call center.

Analyze the CALL TRANSCRIPT below and produce insights strictly following the JSON schema.
Your answers MUST be grounded in the transcript only:
- NO outside knowledge
- NO hallucinated numbers

If information is missing, leave fields empty or set them to 0/false instead of inventing details.

----------------------------------------------------------------------
SCHEMA (STRICT, RETURN ONLY JSON)
{
  "intent": {
    "primary": "",
    "top_intent": "",
    "confidence": 0.0
  },
  "disposition": {
    "value": "",
    "confidence": 0.0
  },
  "facts": [],
  "sentiment": {
    "overall": "",
    "score": 0.0
  },
  "quality": {
    "overall_score": 0
  },
  "business": {
    "conversion_achieved": false,
    "confidence": 0.0
  }
}
----------------------------------------------------------------------

GUIDELINES:

1. intent.primary is one of SUPPORT, SALES, BILLING, COMPLAINT, INFORMATION, ONBOARDING, RETENTION.
2. disposition.value is one of RESOLVED, ESCALATED, FOLLOW_UP, TRANSFERRED, ABANDONED, CALLBACK, CONVERTED, NO_RESOLUTION.
3. Confidences are between 0 and 1. sentiment.score is between -1 and 1. quality.overall_score is between 0 and 100.
4. facts are short statements the customer or agent actually said.
5. business.conversion_achieved is true only when the customer clearly agreed to buy or enroll.

DO NOT include commentary.
DO NOT wrap JSON in backticks.

----------------------------------------------------------------------
TRANSCRIPT:
%s

----------------------------------------------------------------------
Return ONLY valid JSON that exactly matches the SCHEMA.
`
	return fmt.Sprintf(prompt, transcript)
}
