package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"strings"
)

// DefaultScreeningQuestions is the fixed fallback trio substituted whenever
// the model output cannot be resolved into exactly three questions.
var DefaultScreeningQuestions = []string{
	"What relevant experience do you have for this role?",
	"What interests you most about this position?",
	"What are your salary expectations?",
}

var listMarkerPrefix = regexp.MustCompile(`^[\d.\-*\s]+`)

// ScreeningQuestionService generates exactly three screening questions for a
// job description. Parse irregularities degrade to the default set, never to
// an error.
type ScreeningQuestionService interface {
	Generate(ctx context.Context, jobDescription string) ([]string, error)
}

type screeningQuestionService struct {
	llm     LLM
	builder *PromptBuilder
}

func NewScreeningQuestionService(llm LLM) ScreeningQuestionService {
	return &screeningQuestionService{
		llm:     llm,
		builder: NewPromptBuilder(),
	}
}

// Generate implements ScreeningQuestionService.
func (s *screeningQuestionService) Generate(ctx context.Context, jobDescription string) ([]string, error) {
	env, err := s.llm.Respond(ctx, s.builder.ScreeningQuestions(jobDescription))
	if err != nil {
		return nil, fmt.Errorf("failed to generate screening questions: %w", err)
	}

	text, ok := ExtractMessageText(env)
	if !ok {
		log.Println("⚠️  No message payload in screening question response, using defaults")
		return defaultQuestions(), nil
	}

	return ParseScreeningQuestions(text), nil
}

// ParseScreeningQuestions resolves model text into exactly three questions.
// Valid JSON in any of the known shapes wins; otherwise the text is split
// into lines with leading list markers stripped. Anything that does not end
// up as exactly three entries becomes the default set.
func ParseScreeningQuestions(text string) []string {
	questions, err := parseQuestionJSON(text)
	if err != nil {
		questions = splitQuestionLines(text)
	}

	if len(questions) != 3 {
		log.Printf("⚠️  Resolved %d screening questions, substituting defaults\n", len(questions))
		return defaultQuestions()
	}
	return questions
}

func parseQuestionJSON(text string) ([]string, error) {
	cleaned := RepairJSON(extractJSON(text))

	var wrapper struct {
		ScreeningQuestions []struct {
			Question string `json:"question"`
		} `json:"screening_questions"`
	}
	if err := json.Unmarshal([]byte(cleaned), &wrapper); err == nil && wrapper.ScreeningQuestions != nil {
		questions := make([]string, 0, len(wrapper.ScreeningQuestions))
		for _, q := range wrapper.ScreeningQuestions {
			questions = append(questions, q.Question)
		}
		return questions, nil
	}

	var plain []string
	if err := json.Unmarshal([]byte(cleaned), &plain); err == nil {
		return plain, nil
	}

	// Bare array of question objects, without the wrapper.
	var objects []struct {
		Question string `json:"question"`
	}
	if err := json.Unmarshal([]byte(cleaned), &objects); err != nil {
		return nil, err
	}
	questions := make([]string, 0, len(objects))
	for _, q := range objects {
		if q.Question != "" {
			questions = append(questions, q.Question)
		}
	}
	return questions, nil
}

func splitQuestionLines(text string) []string {
	var questions []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(listMarkerPrefix.ReplaceAllString(strings.TrimSpace(line), ""))
		if line == "" {
			continue
		}
		questions = append(questions, line)
		if len(questions) == 3 {
			break
		}
	}
	return questions
}

func defaultQuestions() []string {
	questions := make([]string, len(DefaultScreeningQuestions))
	copy(questions, DefaultScreeningQuestions)
	return questions
}
