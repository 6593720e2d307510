package usecase

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/talkready/backend/pkg/apperr"
	"github.com/talkready/backend/pkg/logger"
	"github.com/talkready/backend/pkg/wav"
	"github.com/talkready/backend/services/evaluation/analysis"
	"github.com/talkready/backend/services/evaluation/consts"
	"github.com/talkready/backend/services/evaluation/entity"
)

// AudioFetcher retrieves the uploaded audio container.
type AudioFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Transcriber runs speech recognition plus pronunciation assessment on raw PCM.
type Transcriber interface {
	Transcribe(ctx context.Context, pcm []byte, referenceText string) (*entity.TranscriptionResult, error)
}

type Usecase interface {
	EvaluateSpeaking(ctx context.Context, req *entity.EvaluateSpeakingRequest) (*entity.EvaluationResult, error)
}

type usecase struct {
	audio  AudioFetcher
	speech Transcriber
}

func New(audio AudioFetcher, speech Transcriber) Usecase {
	return &usecase{
		audio:  audio,
		speech: speech,
	}
}

// EvaluateSpeaking runs the evaluation pipeline: fetch audio, extract PCM,
// transcribe, score, synthesize feedback, aggregate. Any step failing aborts
// the whole request; no partial result is ever returned.
func (u *usecase) EvaluateSpeaking(ctx context.Context, req *entity.EvaluateSpeakingRequest) (*entity.EvaluationResult, error) {
	log := logger.FromContext(ctx)

	if req.AudioURL == "" || req.PromptText == "" {
		return nil, apperr.New(apperr.InvalidArgument, "Missing required fields: audioUrl and promptText are required")
	}

	container, err := u.audio.Fetch(ctx, req.AudioURL)
	if err != nil {
		return nil, tagInternal("Failed to fetch audio", err)
	}
	log.Debug("audio fetched", "size", len(container))

	pcm, err := wav.ExtractPCM(container)
	if err != nil {
		log.Warn("audio container rejected", "error", err)
		return nil, apperr.Wrap(apperr.InvalidArgument, "Could not extract PCM data from audio file", err)
	}
	log.Debug("pcm extracted", "size", len(pcm))

	referenceText := req.ReferenceText
	if referenceText == "" {
		referenceText = req.PromptText
	}

	transcription, err := u.speech.Transcribe(ctx, pcm, referenceText)
	if err != nil {
		return nil, tagInternal("Failed to evaluate speech", err)
	}
	log.Debug("transcribed", "transcript_length", len(transcription.Transcript))

	contextualAnalysis := analysis.Analyze(analysis.Input{
		Transcript:        transcription.Transcript,
		PromptText:        req.PromptText,
		ReferenceText:     req.ReferenceText,
		EvaluationContext: req.EvaluationContext,
		Pronunciation:     transcription.Pronunciation,
	})
	log.Debug("scored", "scores", contextualAnalysis.Scores)

	audioQuality := audioQualityFrom(transcription.Pronunciation)

	// The overall aggregate deliberately averages the three audio metrics
	// with relevance and completeness only; the remaining content scores are
	// reported but not aggregated.
	overallScore := int(math.Round(float64(
		audioQuality.SpeechClarity+
			audioQuality.SpeechFluency+
			audioQuality.Prosody+
			contextualAnalysis.Scores.Relevance+
			contextualAnalysis.Scores.Completeness) / 5))

	log.Info("evaluation completed", "overall_score", overallScore)

	return &entity.EvaluationResult{
		Transcript:         transcription.Transcript,
		AudioQuality:       audioQuality,
		ContextualAnalysis: contextualAnalysis,
		OverallScore:       overallScore,
		EvaluatedAt:        time.Now().UTC(),
		EvaluatedBy:        consts.EvaluatedBy,
	}, nil
}

// audioQualityFrom projects the raw pronunciation metrics without defaults:
// an absent signal is reported as 0, unlike the optimistic defaults folded
// into the contextual scores.
func audioQualityFrom(m entity.PronunciationMetrics) entity.AudioQuality {
	return entity.AudioQuality{
		SpeechClarity: clampScore(m.Accuracy),
		SpeechFluency: clampScore(m.Fluency),
		Prosody:       clampScore(m.Prosody),
	}
}

func clampScore(v float64) int {
	score := int(math.Round(v))
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// tagInternal wraps err as Internal unless a taxonomy code is already attached.
func tagInternal(message string, err error) error {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		return err
	}
	return apperr.Wrap(apperr.Internal, message, err)
}
