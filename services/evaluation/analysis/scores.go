// Package analysis turns a transcript, the prompt it answers and the external
// pronunciation assessment into the contextual evaluation returned to callers.
package analysis

import (
	"math"
	"strings"

	"github.com/talkready/backend/services/evaluation/consts"
	"github.com/talkready/backend/services/evaluation/entity"
)

// Prompt and reference tokens this short are treated as stop words.
const minContentWordLen = 4

var fillerWords = []string{
	"um", "uh", "like", "you know", "basically", "actually", "literally",
}

type Input struct {
	Transcript        string
	PromptText        string
	ReferenceText     string
	EvaluationContext string
	Pronunciation     entity.PronunciationMetrics
}

// Analyze computes the five-dimension score vector and synthesizes feedback
// from it. It never fails: missing inputs fall back to documented defaults.
func Analyze(in Input) entity.ContextualAnalysis {
	transcriptLower := strings.ToLower(strings.TrimSpace(in.Transcript))
	transcriptWords := strings.Fields(transcriptLower)
	promptWords := contentWords(in.PromptText)
	referenceWords := contentWords(in.ReferenceText)

	wordCount := len(transcriptWords)
	fillerCount := countFillers(transcriptLower)

	scores := entity.Scores{
		Relevance:       relevanceScore(promptWords, transcriptWords),
		Completeness:    completenessScore(wordCount),
		Professionalism: max(0, 100-fillerCount*15),
		Accuracy:        accuracyScore(referenceWords, transcriptWords),
		Clarity:         clarityScore(in.Pronunciation.Accuracy),
	}

	fb := feedbackInput{
		scores:       scores,
		wordCount:    wordCount,
		fillerCount:  fillerCount,
		hasReference: len(referenceWords) > 0,
	}
	strengths, improvementAreas := buildFeedback(fb)

	return entity.ContextualAnalysis{
		Scores:                  scores,
		Strengths:               strengths,
		ImprovementAreas:        improvementAreas,
		OverallAssessment:       overallAssessment(scores),
		Suggestion:              buildSuggestion(fb),
		AppropriateAlternatives: alternativeResponses(in.EvaluationContext, in.PromptText),
	}
}

// contentWords lowercases, splits on whitespace and drops stop-word-length
// tokens. Transcript tokens are never filtered this way.
func contentWords(text string) []string {
	var words []string
	for _, w := range strings.Fields(strings.ToLower(text)) {
		if len(w) >= minContentWordLen {
			words = append(words, w)
		}
	}
	return words
}

// fuzzyMatch treats two tokens as equivalent when either contains the other,
// which tolerates inflection and trailing punctuation without edit distance.
func fuzzyMatch(a, b string) bool {
	return strings.Contains(a, b) || strings.Contains(b, a)
}

func countMatched(words, transcriptWords []string) int {
	matched := 0
	for _, w := range words {
		for _, tw := range transcriptWords {
			if fuzzyMatch(tw, w) {
				matched++
				break
			}
		}
	}
	return matched
}

func relevanceScore(promptWords, transcriptWords []string) int {
	matched := countMatched(promptWords, transcriptWords)
	score := int(math.Round(float64(matched) / float64(max(len(promptWords), 1)) * 100))
	return min(100, score)
}

func completenessScore(wordCount int) int {
	switch {
	case wordCount >= 30:
		return 100
	case wordCount >= 20:
		return 85
	case wordCount >= 10:
		return 70
	default:
		return int(math.Round(float64(wordCount) / 10 * 70))
	}
}

func accuracyScore(referenceWords, transcriptWords []string) int {
	if len(referenceWords) == 0 {
		return consts.DefaultAccuracyScore
	}
	matched := countMatched(referenceWords, transcriptWords)
	score := int(math.Round(float64(matched) / float64(len(referenceWords)) * 100))
	return min(100, score)
}

func clarityScore(pronAccuracy float64) int {
	if pronAccuracy == 0 {
		return consts.DefaultClarityScore
	}
	return int(math.Round(pronAccuracy))
}

func countFillers(transcriptLower string) int {
	count := 0
	for _, filler := range fillerWords {
		count += countWholeWord(transcriptLower, filler)
	}
	return count
}

// countWholeWord counts occurrences of phrase in text that sit on word
// boundaries, so "like" does not match inside "unlikely".
func countWholeWord(text, phrase string) int {
	count := 0
	for start := 0; ; {
		idx := strings.Index(text[start:], phrase)
		if idx < 0 {
			return count
		}
		idx += start
		end := idx + len(phrase)
		if (idx == 0 || !isWordChar(text[idx-1])) && (end == len(text) || !isWordChar(text[end])) {
			count++
		}
		start = idx + 1
	}
}

func isWordChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_'
}
