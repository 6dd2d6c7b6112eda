package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sialabs/recruiting-agent/internal/models"
)

func TestDecodeCandidates(t *testing.T) {
	t.Run("nil payload", func(t *testing.T) {
		records, raw, err := DecodeCandidates(nil)
		require.NoError(t, err)
		assert.Empty(t, records)
		assert.Empty(t, raw)
	})

	t.Run("raw text fallback", func(t *testing.T) {
		records, raw, err := DecodeCandidates("the model rambled instead")
		require.NoError(t, err)
		assert.Empty(t, records)
		assert.Equal(t, "the model rambled instead", raw)
	})

	t.Run("decoded list payload", func(t *testing.T) {
		payload := []any{
			map[string]any{"candidate": map[string]any{"full_name": "Sarah Chen"}},
			map[string]any{"full_name": "Marcus Webb"},
		}
		records, raw, err := DecodeCandidates(payload)
		require.NoError(t, err)
		assert.Empty(t, raw)
		require.Len(t, records, 2)
		assert.Equal(t, "Sarah Chen", records[0].Candidate.FullName)
		assert.Equal(t, "Marcus Webb", records[1].Candidate.FullName)
	})

	t.Run("unrecognized shape is an error", func(t *testing.T) {
		_, _, err := DecodeCandidates(map[string]any{"message": "no list here"})
		require.Error(t, err)
	})
}

func TestClientRequests(t *testing.T) {
	t.Run("health", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/health", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(models.HealthResponse{Status: "ok"})
		}))
		defer server.Close()

		health, err := New(server.URL).Health(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "ok", health.Status)
	})

	t.Run("screening questions", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var req models.ScreeningQuestionsRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "Staff engineer", req.JobDescription)
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(models.ScreeningQuestionsResponse{
				Success:   true,
				Questions: []string{"A?", "B?", "C?"},
			})
		}))
		defer server.Close()

		questions, err := New(server.URL).GenerateScreeningQuestions(context.Background(), "Staff engineer")
		require.NoError(t, err)
		assert.Equal(t, []string{"A?", "B?", "C?"}, questions)
	})

	t.Run("api error body surfaces in the error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(models.ErrorResponse{Success: false, Error: "model unavailable"})
		}))
		defer server.Close()

		_, err := New(server.URL).AnalyzeJobDescription(context.Background(), models.AnalyzeJobDescriptionRequest{
			RoleBrief: "Staff engineer",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "model unavailable")
	})

	t.Run("non json error body falls back to status code", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "bad gateway", http.StatusBadGateway)
		}))
		defer server.Close()

		_, err := New(server.URL).RecruiterChat(context.Background(), models.RecruiterChatRequest{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "502")
	})
}
