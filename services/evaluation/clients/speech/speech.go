// Package speech calls the Azure Speech service for transcription plus
// pronunciation assessment of a single utterance.
package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/talkready/backend/pkg/apperr"
	"github.com/talkready/backend/pkg/httputil"
	"github.com/talkready/backend/services/evaluation/analysis"
	"github.com/talkready/backend/services/evaluation/consts"
	"github.com/talkready/backend/services/evaluation/entity"
)

type Config struct {
	Key    string
	Region string
	// BaseURL overrides the regional endpoint, used by tests.
	BaseURL string
}

type Client struct {
	key        string
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

type pronAssessmentParams struct {
	ReferenceText string `json:"ReferenceText"`
	GradingSystem string `json:"GradingSystem"`
	Granularity   string `json:"Granularity"`
	Dimension     string `json:"Dimension"`
	EnableMiscue  bool   `json:"EnableMiscue"`
}

func New(cfg Config, log *slog.Logger) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" && cfg.Region != "" {
		baseURL = fmt.Sprintf("https://%s.stt.speech.microsoft.com/speech/recognition/conversation/cognitiveservices/v1", cfg.Region)
	}
	log.Debug("creating speech client",
		slog.String("base_url", baseURL),
		slog.Bool("api_key_set", cfg.Key != ""))
	return &Client{
		key:        cfg.Key,
		baseURL:    baseURL,
		httpClient: httputil.SharedClient(),
		log:        log,
	}
}

// Transcribe sends raw 16 kHz mono PCM for recognition and pronunciation
// assessment against referenceText and returns the best hypothesis.
func (c *Client) Transcribe(ctx context.Context, pcm []byte, referenceText string) (*entity.TranscriptionResult, error) {
	if c.key == "" || c.baseURL == "" {
		return nil, apperr.New(apperr.FailedPrecondition, "Azure credentials not configured")
	}

	params := url.Values{}
	params.Set("language", "en-US")
	params.Set("format", "detailed")

	assessment := pronAssessmentParams{
		ReferenceText: analysis.SanitizeText(referenceText),
		GradingSystem: "HundredMark",
		Granularity:   "Phoneme",
		Dimension:     "Comprehensive",
		EnableMiscue:  true,
	}
	assessmentJSON, err := json.Marshal(assessment)
	if err != nil {
		return nil, fmt.Errorf("marshal pronunciation assessment config: %w", err)
	}

	c.log.Info("calling speech service", slog.Int("pcm_size", len(pcm)))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"?"+params.Encode(), bytes.NewReader(pcm))
	if err != nil {
		return nil, fmt.Errorf("build speech request: %w", err)
	}
	req.Header.Set("Ocp-Apim-Subscription-Key", c.key)
	req.Header.Set("Content-Type", fmt.Sprintf("audio/pcm; samplerate=%d; bitdepth=%d; channels=%d",
		consts.SampleRate, consts.BitDepth, consts.Channels))
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Pronunciation-Assessment", string(assessmentJSON))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("speech request failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("call speech service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.log.Error("speech service returned error status",
			slog.Int("status_code", resp.StatusCode),
			slog.String("body", string(body)))
		return nil, fmt.Errorf("speech service returned status %d", resp.StatusCode)
	}

	var result struct {
		RecognitionStatus string `json:"RecognitionStatus"`
		NBest             []struct {
			Display                 string `json:"Display"`
			Lexical                 string `json:"Lexical"`
			PronunciationAssessment struct {
				AccuracyScore float64 `json:"AccuracyScore"`
				FluencyScore  float64 `json:"FluencyScore"`
				ProsodyScore  float64 `json:"ProsodyScore"`
			} `json:"PronunciationAssessment"`
		} `json:"NBest"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode speech response: %w", err)
	}

	if len(result.NBest) == 0 {
		c.log.Warn("speech service returned no hypotheses",
			slog.String("recognition_status", result.RecognitionStatus))
		return nil, apperr.New(apperr.NotFound, "No transcription results found. Audio may be unclear or too short.")
	}

	best := result.NBest[0]
	transcript := best.Display
	if transcript == "" {
		transcript = best.Lexical
	}

	c.log.Info("transcription received",
		slog.Int("transcript_length", len(transcript)),
		slog.Float64("accuracy", best.PronunciationAssessment.AccuracyScore),
		slog.Float64("fluency", best.PronunciationAssessment.FluencyScore),
		slog.Float64("prosody", best.PronunciationAssessment.ProsodyScore))

	return &entity.TranscriptionResult{
		Transcript: transcript,
		Pronunciation: entity.PronunciationMetrics{
			Accuracy: best.PronunciationAssessment.AccuracyScore,
			Fluency:  best.PronunciationAssessment.FluencyScore,
			Prosody:  best.PronunciationAssessment.ProsodyScore,
		},
	}, nil
}
