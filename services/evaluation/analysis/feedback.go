package analysis

import (
	"math"
	"strings"

	"github.com/talkready/backend/services/evaluation/entity"
)

type feedbackInput struct {
	scores       entity.Scores
	wordCount    int
	fillerCount  int
	hasReference bool
}

// feedbackRule pairs a strength with its improvement counterpart. Rules are
// independent of each other and evaluated in a fixed order.
type feedbackRule struct {
	strong      func(f feedbackInput) bool
	strength    string
	needsWork   func(f feedbackInput) bool
	improvement string
}

var feedbackRules = []feedbackRule{
	{
		strong:      func(f feedbackInput) bool { return f.scores.Relevance >= 70 },
		strength:    "Response directly addresses the prompt",
		needsWork:   func(f feedbackInput) bool { return true },
		improvement: "Try to address all aspects of the prompt more directly",
	},
	{
		strong:      func(f feedbackInput) bool { return f.scores.Completeness >= 80 },
		strength:    "Response is well-developed and complete",
		needsWork:   func(f feedbackInput) bool { return f.wordCount < 15 },
		improvement: "Provide more detailed responses (aim for 20-30 words minimum)",
	},
	{
		strong:      func(f feedbackInput) bool { return f.scores.Professionalism >= 80 },
		strength:    "Professional and fluent delivery with minimal filler words",
		needsWork:   func(f feedbackInput) bool { return f.fillerCount > 2 },
		improvement: "Reduce filler words like \"um\", \"uh\", \"like\" for more professional speech",
	},
	{
		strong:      func(f feedbackInput) bool { return f.scores.Clarity >= 80 },
		strength:    "Clear pronunciation and articulation",
		needsWork:   func(f feedbackInput) bool { return true },
		improvement: "Focus on clearer pronunciation and articulation",
	},
	{
		strong:      func(f feedbackInput) bool { return f.scores.Accuracy >= 70 && f.hasReference },
		strength:    "Response aligns well with expected content",
		needsWork:   func(f feedbackInput) bool { return f.hasReference },
		improvement: "Try to include key points from the reference answer",
	},
}

func buildFeedback(f feedbackInput) (strengths, improvementAreas []string) {
	strengths = []string{}
	improvementAreas = []string{}
	for _, rule := range feedbackRules {
		if rule.strong(f) {
			strengths = append(strengths, rule.strength)
		} else if rule.needsWork(f) {
			improvementAreas = append(improvementAreas, rule.improvement)
		}
	}
	return strengths, improvementAreas
}

func overallAssessment(s entity.Scores) string {
	sum := s.Relevance + s.Completeness + s.Professionalism + s.Clarity + s.Accuracy
	avg := int(math.Round(float64(sum) / 5))

	switch {
	case avg >= 85:
		return "Excellent response! The student demonstrates strong communication skills with clear articulation and relevant content."
	case avg >= 70:
		return "Good response overall. The student shows solid understanding with room for minor improvements in delivery or content."
	case avg >= 50:
		return "Adequate response with several areas for improvement. The student should focus on clarity, completeness, and relevance."
	default:
		return "The response needs significant improvement. Focus on addressing the prompt clearly and completely."
	}
}

func buildSuggestion(f feedbackInput) string {
	suggestion := "Continue practicing to improve customer service communication skills. "
	if f.wordCount < 15 {
		suggestion += "Try to give more detailed, complete responses. "
	}
	if f.fillerCount > 2 {
		suggestion += "Practice speaking without filler words by pausing briefly instead. "
	}
	if f.scores.Relevance < 70 {
		suggestion += "Make sure to address all parts of the question or scenario given. "
	}
	return suggestion
}

// alternativeResponses picks three canned example answers for the evaluation
// category. The first matching trigger wins; unmatched prompts get the
// generic set.
func alternativeResponses(evaluationContext, promptText string) []string {
	contextLower := strings.ToLower(evaluationContext)
	promptLower := strings.ToLower(promptText)

	switch {
	case strings.Contains(contextLower, "greeting") || strings.Contains(promptLower, "greet"):
		return []string{
			"Good morning! Welcome to our store. How may I assist you today?",
			"Hello! Thank you for visiting us. What can I help you with?",
			"Hi there! It's great to see you. How can I make your day better?",
		}
	case strings.Contains(contextLower, "complaint") || strings.Contains(promptLower, "issue"):
		return []string{
			"I sincerely apologize for the inconvenience. Let me help resolve this right away.",
			"I understand your frustration, and I'm here to help. Let's fix this together.",
			"Thank you for bringing this to our attention. I'll do everything I can to make this right.",
		}
	case strings.Contains(contextLower, "help") || strings.Contains(promptLower, "assist"):
		return []string{
			"I'd be happy to help you with that. Let me explain your options.",
			"Absolutely! I can assist you with that. Here's what I can do for you.",
			"Of course! Let me guide you through this step by step.",
		}
	default:
		return []string{
			"Thank you for your question. I'm here to help you find the best solution.",
			"I appreciate you reaching out. Let me provide you with the information you need.",
			"That's a great question. Allow me to explain that for you clearly.",
		}
	}
}
