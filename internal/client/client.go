// Package client is the HTTP client the terminal wizard uses to talk to the
// recruiting agent API.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"sialabs/recruiting-agent/internal/models"
)

// Client wraps the recruiting agent API.
type Client struct {
	http *resty.Client
}

// New builds a client against baseURL (e.g. http://localhost:3004).
func New(baseURL string) *Client {
	http := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(120 * time.Second).
		SetHeader("Content-Type", "application/json")
	return &Client{http: http}
}

// Health checks API liveness.
func (c *Client) Health(ctx context.Context) (*models.HealthResponse, error) {
	var out models.HealthResponse
	if err := c.get(ctx, "/api/health", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AnalyzeJobDescription generates the candidate list for a role brief.
func (c *Client) AnalyzeJobDescription(ctx context.Context, req models.AnalyzeJobDescriptionRequest) (*models.AnalyzeJobDescriptionResponse, error) {
	var out models.AnalyzeJobDescriptionResponse
	if err := c.post(ctx, "/api/analyze-job-description", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GenerateScreeningQuestions returns exactly three questions for a job
// description.
func (c *Client) GenerateScreeningQuestions(ctx context.Context, jobDescription string) ([]string, error) {
	var out models.ScreeningQuestionsResponse
	req := models.ScreeningQuestionsRequest{JobDescription: jobDescription}
	if err := c.post(ctx, "/api/generate-screening-questions", req, &out); err != nil {
		return nil, err
	}
	return out.Questions, nil
}

// GenerateOutreachEmail drafts the outreach email.
func (c *Client) GenerateOutreachEmail(ctx context.Context, req models.OutreachEmailRequest) (*models.OutreachEmailResponse, error) {
	var out models.OutreachEmailResponse
	if err := c.post(ctx, "/api/generate-outreach-email", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RecruiterChat sends one chat turn, optionally requesting regeneration.
func (c *Client) RecruiterChat(ctx context.Context, req models.RecruiterChatRequest) (*models.RecruiterChatResponse, error) {
	var out models.RecruiterChatResponse
	if err := c.post(ctx, "/api/recruiter-chat", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GenerateCandidateProfile requests enrichment for one candidate.
func (c *Client) GenerateCandidateProfile(ctx context.Context, req models.CandidateProfileRequest) (*models.CandidateProfileResponse, error) {
	var out models.CandidateProfileResponse
	if err := c.post(ctx, "/api/generate-candidate-profile", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	resp, err := c.http.R().SetContext(ctx).SetResult(out).Get(path)
	if err != nil {
		return fmt.Errorf("GET %s failed: %w", path, err)
	}
	return checkStatus(resp, path)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	resp, err := c.http.R().SetContext(ctx).SetBody(body).SetResult(out).Post(path)
	if err != nil {
		return fmt.Errorf("POST %s failed: %w", path, err)
	}
	return checkStatus(resp, path)
}

func checkStatus(resp *resty.Response, path string) error {
	if !resp.IsError() {
		return nil
	}

	var apiErr models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &apiErr); err == nil && apiErr.Error != "" {
		return fmt.Errorf("%s: %s", path, apiErr.Error)
	}
	return fmt.Errorf("%s returned status %d", path, resp.StatusCode())
}

// DecodeCandidates adapts the loosely typed candidate payload of an analyze
// or regeneration response into records. A raw-string fallback payload
// yields an empty list and the raw text.
func DecodeCandidates(payload any) ([]models.CandidateRecord, string, error) {
	switch v := payload.(type) {
	case nil:
		return nil, "", nil
	case string:
		return nil, v, nil
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, "", fmt.Errorf("failed to re-encode candidate payload: %w", err)
	}
	records, err := models.NormalizeCandidateList(raw)
	if err != nil {
		return nil, "", err
	}
	return records, "", nil
}
