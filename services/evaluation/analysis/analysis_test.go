package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/talkready/backend/services/evaluation/entity"
)

func TestAnalyzeGreetingScenario(t *testing.T) {
	got := Analyze(Input{
		Transcript:    "Good morning! Welcome, how can I help you today?",
		PromptText:    "Greet the customer and offer assistance",
		Pronunciation: entity.PronunciationMetrics{Accuracy: 90, Fluency: 88, Prosody: 85},
	})

	// Prompt content words: greet, customer, offer, assistance. Only
	// "assistance" fuzzy-matches (it contains the transcript token "i").
	assert.Equal(t, 25, got.Scores.Relevance)
	assert.Equal(t, 63, got.Scores.Completeness) // 9 words
	assert.Equal(t, 100, got.Scores.Professionalism)
	assert.Equal(t, 80, got.Scores.Accuracy) // no reference text
	assert.Equal(t, 90, got.Scores.Clarity)

	// Prompt contains "greet", so the greeting alternatives are returned.
	assert.Len(t, got.AppropriateAlternatives, 3)
	assert.Equal(t, "Good morning! Welcome to our store. How may I assist you today?", got.AppropriateAlternatives[0])
}

func TestAnalyzeEmptyTranscript(t *testing.T) {
	got := Analyze(Input{
		Transcript:    "",
		PromptText:    "Describe your previous work experience",
		ReferenceText: "I worked in customer support for three years",
		Pronunciation: entity.PronunciationMetrics{Accuracy: 1},
	})

	assert.Equal(t, 0, got.Scores.Relevance)
	assert.Equal(t, 0, got.Scores.Completeness)
	assert.Equal(t, 100, got.Scores.Professionalism)
	assert.Equal(t, 0, got.Scores.Accuracy)
	assert.Equal(t, 1, got.Scores.Clarity)

	assert.Equal(t,
		"The response needs significant improvement. Focus on addressing the prompt clearly and completely.",
		got.OverallAssessment)
}

func TestCompletenessScoreSteps(t *testing.T) {
	cases := []struct {
		wordCount int
		want      int
	}{
		{0, 0},
		{1, 7},
		{9, 63},
		{10, 70},
		{19, 70},
		{20, 85},
		{29, 85},
		{30, 100},
		{55, 100},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, completenessScore(tc.wordCount), "wordCount=%d", tc.wordCount)
	}

	// Monotonically non-decreasing over the whole range.
	prev := 0
	for wc := 0; wc <= 40; wc++ {
		score := completenessScore(wc)
		assert.GreaterOrEqual(t, score, prev)
		prev = score
	}
}

func TestProfessionalismNeverBelowZero(t *testing.T) {
	transcript := strings.Repeat("um uh like ", 3) // 9 filler hits
	got := Analyze(Input{Transcript: transcript, PromptText: "Talk about anything"})

	assert.Equal(t, 0, got.Scores.Professionalism)
}

func TestFillerCountingUsesWordBoundaries(t *testing.T) {
	assert.Equal(t, 0, countFillers("unlikely alike likes"))
	assert.Equal(t, 2, countFillers("um, i like this"))
	assert.Equal(t, 1, countFillers("well you know how it goes"))
	assert.Equal(t, 3, countFillers("basically it was actually literally fine"))
}

func TestRelevanceAndAccuracyStayInRange(t *testing.T) {
	// Every prompt word matches, score caps at 100.
	got := Analyze(Input{
		Transcript:    "greetings customer assistance offered",
		PromptText:    "greet customer assist offer",
		ReferenceText: "greet customer assist offer",
	})
	assert.Equal(t, 100, got.Scores.Relevance)
	assert.Equal(t, 100, got.Scores.Accuracy)

	// Empty prompt token set must not divide by zero.
	got = Analyze(Input{Transcript: "hello there", PromptText: "a an it"})
	assert.Equal(t, 0, got.Scores.Relevance)
}

func TestClarityDefaultsWhenSignalAbsent(t *testing.T) {
	got := Analyze(Input{Transcript: "hello", PromptText: "greet the customer"})
	assert.Equal(t, 80, got.Scores.Clarity)
}

func TestFeedbackRules(t *testing.T) {
	f := feedbackInput{
		scores:       entity.Scores{Relevance: 90, Completeness: 85, Professionalism: 100, Accuracy: 75, Clarity: 95},
		wordCount:    25,
		fillerCount:  0,
		hasReference: true,
	}
	strengths, improvements := buildFeedback(f)
	assert.Len(t, strengths, 5)
	assert.Empty(t, improvements)

	f = feedbackInput{
		scores:       entity.Scores{Relevance: 10, Completeness: 20, Professionalism: 40, Accuracy: 30, Clarity: 50},
		wordCount:    5,
		fillerCount:  4,
		hasReference: true,
	}
	strengths, improvements = buildFeedback(f)
	assert.Empty(t, strengths)
	assert.Equal(t, []string{
		"Try to address all aspects of the prompt more directly",
		"Provide more detailed responses (aim for 20-30 words minimum)",
		"Reduce filler words like \"um\", \"uh\", \"like\" for more professional speech",
		"Focus on clearer pronunciation and articulation",
		"Try to include key points from the reference answer",
	}, improvements)

	// Middling completeness with a long answer raises neither side.
	f = feedbackInput{
		scores:    entity.Scores{Relevance: 90, Completeness: 70, Professionalism: 90, Accuracy: 80, Clarity: 90},
		wordCount: 18,
	}
	_, improvements = buildFeedback(f)
	assert.NotContains(t, improvements, "Provide more detailed responses (aim for 20-30 words minimum)")
}

func TestOverallAssessmentTiers(t *testing.T) {
	uniform := func(v int) entity.Scores {
		return entity.Scores{Relevance: v, Completeness: v, Professionalism: v, Accuracy: v, Clarity: v}
	}

	assert.Contains(t, overallAssessment(uniform(90)), "Excellent response!")
	assert.Contains(t, overallAssessment(uniform(75)), "Good response overall.")
	assert.Contains(t, overallAssessment(uniform(55)), "Adequate response")
	assert.Contains(t, overallAssessment(uniform(30)), "needs significant improvement")
}

func TestBuildSuggestionVariants(t *testing.T) {
	base := "Continue practicing to improve customer service communication skills. "

	assert.Equal(t, base, buildSuggestion(feedbackInput{
		scores:    entity.Scores{Relevance: 80},
		wordCount: 20,
	}))

	full := buildSuggestion(feedbackInput{
		scores:      entity.Scores{Relevance: 10},
		wordCount:   5,
		fillerCount: 4,
	})
	assert.Equal(t, base+
		"Try to give more detailed, complete responses. "+
		"Practice speaking without filler words by pausing briefly instead. "+
		"Make sure to address all parts of the question or scenario given. ",
		full)
}

func TestAlternativeResponsesTriggers(t *testing.T) {
	greeting := alternativeResponses("greeting", "whatever")
	assert.Contains(t, greeting[0], "Welcome to our store")

	complaint := alternativeResponses("", "Handle a customer reporting an issue")
	assert.Contains(t, complaint[0], "sincerely apologize")

	help := alternativeResponses("", "Assist a customer choosing a plan")
	assert.Contains(t, help[0], "happy to help")

	// Category order is fixed: the greeting rule fires first even though the
	// context would match the complaint rule.
	mixed := alternativeResponses("complaint", "Greet the customer")
	assert.Contains(t, mixed[0], "Welcome to our store")

	generic := alternativeResponses("", "Explain the refund policy")
	assert.Contains(t, generic[0], "Thank you for your question")
	assert.Len(t, generic, 3)
}

func TestSanitizeText(t *testing.T) {
	assert.Equal(t, "", SanitizeText(""))
	assert.Equal(t, `"It's fine" - really...`, SanitizeText(" “It’s fine” — really… "))
}
