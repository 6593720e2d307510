package entity

import "time"

type EvaluateSpeakingRequest struct {
	AudioURL          string `json:"audioUrl"`
	PromptText        string `json:"promptText"`
	ReferenceText     string `json:"referenceText,omitempty"`
	EvaluationContext string `json:"evaluationContext,omitempty"`
}

// PronunciationMetrics carries the externally assessed phoneme-level scores.
// A zero value means the collaborator reported nothing for that dimension.
type PronunciationMetrics struct {
	Accuracy float64
	Fluency  float64
	Prosody  float64
}

type TranscriptionResult struct {
	Transcript    string
	Pronunciation PronunciationMetrics
}

type Scores struct {
	Relevance       int `json:"relevance"`
	Completeness    int `json:"completeness"`
	Professionalism int `json:"professionalism"`
	Accuracy        int `json:"accuracy"`
	Clarity         int `json:"clarity"`
}

type ContextualAnalysis struct {
	Scores                  Scores   `json:"scores"`
	Strengths               []string `json:"strengths"`
	ImprovementAreas        []string `json:"improvementAreas"`
	OverallAssessment       string   `json:"overallAssessment"`
	Suggestion              string   `json:"suggestion"`
	AppropriateAlternatives []string `json:"appropriateAlternatives"`
}

type AudioQuality struct {
	SpeechClarity int `json:"speechClarity"`
	SpeechFluency int `json:"speechFluency"`
	Prosody       int `json:"prosody"`
}

type EvaluationResult struct {
	Transcript         string             `json:"transcript"`
	AudioQuality       AudioQuality       `json:"audioQuality"`
	ContextualAnalysis ContextualAnalysis `json:"contextualAnalysis"`
	OverallScore       int                `json:"overallScore"`
	EvaluatedAt        time.Time          `json:"evaluatedAt"`
	EvaluatedBy        string             `json:"evaluatedBy"`
}
