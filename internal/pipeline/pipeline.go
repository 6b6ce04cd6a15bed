// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rikki233752/blink-script-ai-sub000/internal/classifier"
	"github.com/rikki233752/blink-script-ai-sub000/internal/conversion"
	"github.com/rikki233752/blink-script-ai-sub000/internal/extractor"
	"github.com/rikki233752/blink-script-ai-sub000/internal/lexicon"
	"github.com/rikki233752/blink-script-ai-sub000/internal/scoring"
	"github.com/rikki233752/blink-script-ai-sub000/internal/sentiment"
	"github.com/rikki233752/blink-script-ai-sub000/internal/speaker"
	"github.com/rikki233752/blink-script-ai-sub000/internal/summary"
	"github.com/rikki233752/blink-script-ai-sub000/internal/types"
)

// bundleFactConfidence ranks facts from the comprehensive analyzer.
const bundleFactConfidence = 75

// Input is one transcript to analyze. Transcription and Bundle are optional.
type Input struct {
	CallID     string
	Transcript string
	// Transcription is the provider result; its diarization, topics,
	// intents, sentiment and summary feed the analyzers.
	Transcription *types.TranscriptionResult
	// Bundle is the comprehensive analyzer output. It takes priority over
	// heuristic intent, conversion and disposition verdicts.
	Bundle   *types.ComprehensiveAnalysis
	Baseline types.CallData
}

// Pipeline wires the analyzers over one dictionary.
type Pipeline struct {
	speaker    *speaker.Parser
	sentiment  *sentiment.Analyzer
	classifier *classifier.Classifier
	conversion *conversion.Analyzer
	scoring    *scoring.Engine
	summary    *summary.Generator

	now   func() time.Time
	newID func() string
}

func New(d lexicon.Dictionary) *Pipeline {
	return &Pipeline{
		speaker:    speaker.New(d),
		sentiment:  sentiment.New(d),
		classifier: classifier.New(d),
		conversion: conversion.New(d),
		scoring:    scoring.New(d),
		summary:    summary.New(d),
		now:        func() time.Time { return time.Now().UTC() },
		newID:      uuid.NewString,
	}
}

var defaultPipeline = New(nil)

// Analyze uses the English dictionary.
func Analyze(in Input) types.CallAnalysis {
	return defaultPipeline.Analyze(in)
}

// AnalyzeMany uses the English dictionary.
func AnalyzeMany(ctx context.Context, inputs []Input, workers int) ([]types.CallAnalysis, error) {
	return defaultPipeline.AnalyzeMany(ctx, inputs, workers)
}

// Analyze runs speaker parsing, extraction, classification, conversion,
// scoring and summary over one utterance list. It never fails.
func (p *Pipeline) Analyze(in Input) types.CallAnalysis {
	tr := in.Transcription
	text := in.Transcript
	var diar *types.Diarization
	if tr != nil {
		diar = tr.Diarization()
		if strings.TrimSpace(text) == "" {
			text = tr.Transcript
		}
	}

	utts := p.speaker.Parse(text, diar)
	if strings.TrimSpace(text) == "" {
		text = speaker.Transcript(utts)
	}

	sent := p.sentiment.AnalyzeUtterances(utts)
	ai := classifier.AISignals{Sentiment: sent.Segments}
	providerSummary := ""
	if tr != nil {
		ai.Intents, ai.Topics = tr.Intents, tr.Topics
		if len(tr.Sentiments) > 0 {
			ai.Sentiment = tr.Sentiments
		}
		providerSummary = tr.Summary
	}

	b := in.Bundle
	if b != nil {
		ai.TopIntent = b.Intent.TopIntent
		if ai.TopIntent == "" {
			ai.TopIntent = b.Intent.Primary
		}
		if b.Intent.Confidence > 0 {
			ai.TopIntentConfidence = percent(b.Intent.Confidence)
		}
		if len(ai.Sentiment) == 0 && b.Sentiment.Overall != "" {
			ai.Sentiment = []types.SentimentSegment{{
				Text:      "comprehensive analysis",
				Sentiment: sentiment.Label(b.Sentiment.Score),
				Score:     b.Sentiment.Score,
			}}
		}
	}

	intent := p.classifier.DetectIntent(text, ai)
	conv := p.conversion.AnalyzeUtterances(utts, intent, sent)
	if b != nil {
		conv = conversion.ApplyOutcome(conv, types.ConversionOutcome{
			Achieved:   b.Business.ConversionAchieved,
			Confidence: percent(b.Business.Confidence),
		}, intent)
	}

	outcome := conv.Outcome()
	disp := p.classifier.DetectDisposition(text, intent, ai.Sentiment, &outcome)
	// The bundle's own disposition applies unless its conversion verdict
	// already forced CONVERTED. It cannot claim CONVERTED on its own.
	if b != nil && !outcome.Achieved && b.Disposition.Value != "" &&
		types.Disposition(strings.ToUpper(b.Disposition.Value)) != types.DispositionConverted {
		disp = p.classifier.OverrideDisposition(disp, b.Disposition.Value, percent(b.Disposition.Confidence), text, intent)
	}

	baseline := in.Baseline
	baseline.Utterances = utts
	if baseline.CallID == "" {
		baseline.CallID = in.CallID
	}
	score := p.scoring.Calculate(text, baseline)
	if b != nil && b.Quality.OverallScore > 0 {
		scoring.ApplyExternalQuality(&score, percent(b.Quality.OverallScore))
	}

	var facts []types.Fact
	if b != nil {
		for _, f := range b.Facts {
			if f = strings.TrimSpace(f); f != "" {
				facts = append(facts, types.Fact{Kind: "analysis", Text: f, Confidence: bundleFactConfidence})
			}
		}
	}
	sum := p.summary.Generate(summary.Input{
		Transcript:      text,
		Utterances:      utts,
		Intent:          intent,
		Disposition:     disp,
		Sentiment:       sent,
		Conversion:      &conv,
		Scoring:         &score,
		Facts:           facts,
		ProviderSummary: providerSummary,
	})

	return types.CallAnalysis{
		ID:          p.newID(),
		CallID:      in.CallID,
		AnalyzedAt:  p.now(),
		Transcript:  text,
		Utterances:  utts,
		TalkMetrics: extractor.TalkMetrics(utts),
		Sentiment:   sent,
		Intent:      intent,
		Disposition: disp,
		Conversion:  conv,
		Scoring:     score,
		Summary:     sum,
		AIEnhanced:  intent.AIEnhanced || b != nil || (tr != nil && (len(tr.Topics) > 0 || len(tr.Intents) > 0)),
	}
}

// AnalyzeMany analyzes inputs on a bounded pool of workers. Results are in
// input order. On cancellation the inputs not yet started are left as zero
// values and ctx.Err() is returned.
func (p *Pipeline) AnalyzeMany(ctx context.Context, inputs []Input, workers int) ([]types.CallAnalysis, error) {
	if workers <= 0 {
		workers = 1
	}
	workers = min(workers, max(1, len(inputs)))
	out := make([]types.CallAnalysis, len(inputs))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				out[i] = p.Analyze(inputs[i])
			}
		}()
	}

	var err error
feed:
	for i := range inputs {
		if err = ctx.Err(); err != nil {
			break
		}
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()
	return out, err
}

// percent accepts either a 0-1 fraction or a 0-100 value.
func percent(v float64) int {
	if v <= 1 {
		v *= 100
	}
	return min(100, max(0, int(math.Round(v))))
}
