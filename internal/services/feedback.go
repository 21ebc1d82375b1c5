package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/somapath/somapath-backend/internal/clients/openai"
	"github.com/somapath/somapath-backend/internal/platform/apperr"
	"github.com/somapath/somapath-backend/internal/platform/logger"
	"github.com/somapath/somapath-backend/internal/types"
)

const (
	feedbackSystemPrompt = "You are an expert college admissions essay reviewer. Provide constructive, actionable feedback to help students improve their essays. Focus on tone, clarity, and storytelling."

	defaultEssayPrompt = "Personal Statement"
)

// FeedbackService turns essay text into a structured critique via the model.
// Feedback is transient: this service never persists anything.
type FeedbackService interface {
	Generate(ctx context.Context, content, prompt string) (*types.Feedback, error)
}

type feedbackService struct {
	log     *logger.Logger
	ai      openai.Client
	timeout time.Duration
}

func NewFeedbackService(log *logger.Logger, ai openai.Client, timeout time.Duration) FeedbackService {
	serviceLog := log.With("service", "FeedbackService")
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &feedbackService{log: serviceLog, ai: ai, timeout: timeout}
}

func (fs *feedbackService) Generate(ctx context.Context, content, prompt string) (*types.Feedback, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: essay content is required", apperr.ErrValidation)
	}

	ctx, cancel := context.WithTimeout(ctx, fs.timeout)
	defer cancel()

	obj, err := fs.ai.GenerateJSONObject(ctx, feedbackSystemPrompt, buildFeedbackPrompt(content, prompt))
	if err != nil {
		fs.log.Warn("Essay feedback generation failed", "error", err)
		return nil, fmt.Errorf("%w: %v", apperr.ErrFeedbackGeneration, err)
	}

	return parseFeedback(obj), nil
}

func buildFeedbackPrompt(content, prompt string) string {
	if strings.TrimSpace(prompt) == "" {
		prompt = defaultEssayPrompt
	}
	var b strings.Builder
	b.WriteString("Essay Prompt: ")
	b.WriteString(prompt)
	b.WriteString("\n\nEssay Content:\n")
	b.WriteString(content)
	b.WriteString("\n\nPlease provide feedback in the following format:\n")
	b.WriteString("1. Tone: Analyze the tone and whether it's appropriate for college admissions\n")
	b.WriteString("2. Clarity: Evaluate how clearly the student communicates their ideas\n")
	b.WriteString("3. Storytelling: Assess the narrative structure and engagement\n")
	b.WriteString("4. Suggestions: Provide 3-5 specific, actionable suggestions for improvement\n")
	b.WriteString("5. Overall Score: Rate the essay from 1-10\n\n")
	b.WriteString("Format your response as JSON with keys: tone, clarity, storytelling, suggestions (array), overallScore (number).")
	return b.String()
}

// parseFeedback maps the untyped model output onto the five-field Feedback.
// Absent or mistyped fields degrade to placeholders instead of failing; only
// a response that is not a JSON object at all is an error upstream.
func parseFeedback(obj map[string]any) *types.Feedback {
	fb := &types.Feedback{
		Tone:         stringField(obj, "tone", "Unable to analyze tone"),
		Clarity:      stringField(obj, "clarity", "Unable to analyze clarity"),
		Storytelling: stringField(obj, "storytelling", "Unable to analyze storytelling"),
		Suggestions:  []string{},
		OverallScore: 5,
	}
	if raw, ok := obj["suggestions"].([]any); ok {
		for _, item := range raw {
			if s, ok := item.(string); ok && s != "" {
				fb.Suggestions = append(fb.Suggestions, s)
			}
		}
	}
	if score, ok := obj["overallScore"].(float64); ok {
		n := int(score)
		if n >= 1 && n <= 10 {
			fb.OverallScore = n
		}
	}
	return fb
}

func stringField(obj map[string]any, key, fallback string) string {
	if s, ok := obj[key].(string); ok && strings.TrimSpace(s) != "" {
		return s
	}
	return fallback
}
