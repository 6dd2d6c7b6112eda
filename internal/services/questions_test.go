package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScreeningQuestions(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "json wrapper shape",
			text: `{"screening_questions": [
				{"id": 1, "question": "How many years of Go?", "intent": "depth"},
				{"id": 2, "question": "Describe a production incident you led.", "intent": "ownership"},
				{"id": 3, "question": "What draws you to this team?", "intent": "motivation"}
			]}`,
			want: []string{
				"How many years of Go?",
				"Describe a production incident you led.",
				"What draws you to this team?",
			},
		},
		{
			name: "plain string array",
			text: `["One?", "Two?", "Three?"]`,
			want: []string{"One?", "Two?", "Three?"},
		},
		{
			name: "bare array of question objects",
			text: `[{"question": "A?"}, {"question": "B?"}, {"question": "C?"}]`,
			want: []string{"A?", "B?", "C?"},
		},
		{
			name: "numbered lines with markers stripped",
			text: "1. First question?\n2. Second question?\n3. Third question?",
			want: []string{"First question?", "Second question?", "Third question?"},
		},
		{
			name: "dashed lines",
			text: "- Alpha?\n- Beta?\n- Gamma?",
			want: []string{"Alpha?", "Beta?", "Gamma?"},
		},
		{
			name: "more than three lines keeps the first three",
			text: "1. A?\n2. B?\n3. C?\n4. D?",
			want: []string{"A?", "B?", "C?"},
		},
		{
			name: "too few lines falls back to defaults",
			text: "Only one question here?",
			want: DefaultScreeningQuestions,
		},
		{
			name: "two element json array falls back to defaults",
			text: `["A?", "B?"]`,
			want: DefaultScreeningQuestions,
		},
		{
			name: "empty text falls back to defaults",
			text: "",
			want: DefaultScreeningQuestions,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseScreeningQuestions(tt.text)
			require.Len(t, got, 3)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScreeningQuestionService_Generate(t *testing.T) {
	t.Run("parses model output", func(t *testing.T) {
		llm := &mockLLM{respond: respondWithText(`["A?", "B?", "C?"]`)}
		svc := NewScreeningQuestionService(llm)

		questions, err := svc.Generate(context.Background(), "Senior Go engineer")
		require.NoError(t, err)
		assert.Equal(t, []string{"A?", "B?", "C?"}, questions)
	})

	t.Run("missing payload degrades to defaults", func(t *testing.T) {
		llm := &mockLLM{respond: func(context.Context, PromptRequest) (*ResponseEnvelope, error) {
			return &ResponseEnvelope{}, nil
		}}
		svc := NewScreeningQuestionService(llm)

		questions, err := svc.Generate(context.Background(), "Senior Go engineer")
		require.NoError(t, err)
		assert.Equal(t, DefaultScreeningQuestions, questions)
	})

	t.Run("upstream failure surfaces as error", func(t *testing.T) {
		llm := &mockLLM{respond: func(context.Context, PromptRequest) (*ResponseEnvelope, error) {
			return nil, errors.New("quota exceeded")
		}}
		svc := NewScreeningQuestionService(llm)

		_, err := svc.Generate(context.Background(), "Senior Go engineer")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "quota exceeded")
	})
}
