package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"guytogo/internal/usecase/interfaces"
	"io"
	"log"
	"math"
	"net/http"
	"strings"
	"time"
)

const (
	geminiBaseURL      = "https://generativelanguage.googleapis.com/v1beta"
	DefaultGeminiModel = "gemini-2.0-flash"
	geminiMaxRetries   = 3
	geminiInitialDelay = 1 * time.Second
)

var ErrMissingGeminiAPIKey = errors.New("missing GEMINI_API_KEY")
var ErrEmptyGeneration = errors.New("model returned no content")

const systemInstruction = `Role: You are a Curriculum Specialist for the Guyana Ministry of Education (MoE).
Task: Generate a Lesson Plan that strictly follows the official 8-column landscape template.

Use the 2024/2025 MoE Renewed Curriculum, competency-based frameworks, Guyanese local context (Regions 1-10) and cultural references.

Columns: [Time] | [Specific Objectives] | [Content/Concept] | [Prerequisite Knowledge] | [Teacher's Activities] | [Students' Activities] | [RESOURCES] | [EVALUATION]

Rules:
1. Columns 1, 2, 3, 4, 7 and 8 use rowspan to cover the whole lesson in one block.
2. Columns 5 and 6 are subdivided into exactly 5 stages: Introduction, Development Stage I, Stage II, Stage III, Conclusion.
3. Activity columns only hold concrete teacher and student actions.
4. The EVALUATION column is left empty (<td></td>).

Output raw HTML only, no markdown code blocks, optimized for Letter Landscape.
Table style: <table border="1" style="border-collapse: collapse; width: 100%; border: 2px solid black; font-family: 'Times New Roman', serif;">.
Heading: <h2>The Lesson Plan Template</h2> (centered).`

// GeminiClient generates lesson plans through the Gemini generateContent REST API.
type GeminiClient struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

var _ interfaces.ILessonPlanGenerator = (*GeminiClient)(nil)

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	SystemInstruction geminiContent   `json:"systemInstruction"`
	Contents          []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

type geminiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

func NewGeminiClient(apiKey, model string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, ErrMissingGeminiAPIKey
	}
	if model == "" {
		model = DefaultGeminiModel
	}
	return &GeminiClient{
		apiKey:  apiKey,
		model:   model,
		baseURL: geminiBaseURL,
		client:  &http.Client{Timeout: 90 * time.Second},
	}, nil
}

func (c *GeminiClient) Generate(ctx context.Context, in interfaces.LessonPlanInput) (string, error) {
	body, err := json.Marshal(geminiRequest{
		SystemInstruction: geminiContent{Parts: []geminiPart{{Text: systemInstruction}}},
		Contents:          []geminiContent{{Role: "user", Parts: []geminiPart{{Text: buildPrompt(in)}}}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}
	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)

	var lastErr error
	for attempt := 0; attempt < geminiMaxRetries; attempt++ {
		if attempt > 0 {
			delay := time.Duration(math.Pow(2, float64(attempt-1))) * geminiInitialDelay
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}

		text, retry, err := c.call(ctx, url, body)
		if err == nil {
			return text, nil
		}
		lastErr = err
		log.Printf("[ai][gemini] generate attempt failed attempt=%d err=%v", attempt+1, err)
		if !retry {
			break
		}
	}
	return "", lastErr
}

func (c *GeminiClient) call(ctx context.Context, url string, body []byte) (string, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", false, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", ctx.Err() == nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	respBody, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return "", true, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var gErr geminiError
		if json.Unmarshal(respBody, &gErr) == nil && gErr.Error.Message != "" {
			err = fmt.Errorf("Gemini API error (%d): %s", resp.StatusCode, gErr.Error.Message)
		} else {
			err = fmt.Errorf("Gemini API error (%d): %s", resp.StatusCode, string(respBody))
		}
		retry := resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500
		return "", retry, err
	}

	var out geminiResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return "", false, fmt.Errorf("failed to decode response: %w", err)
	}
	var sb strings.Builder
	for _, cand := range out.Candidates {
		for _, p := range cand.Content.Parts {
			sb.WriteString(p.Text)
		}
		if sb.Len() > 0 {
			break
		}
	}
	if strings.TrimSpace(sb.String()) == "" {
		return "", false, ErrEmptyGeneration
	}
	return sb.String(), false, nil
}

func buildPrompt(in interfaces.LessonPlanInput) string {
	return fmt.Sprintf(`Generate a Guyanese Lesson Plan for:
- Subject: %s
- Grade Level: %s
- Topic: %s
- Duration: %s

Requirements:
- Use the 8-column MoE Template.
- Subdivide activities into: Introduction, Stage I, II, III, and Conclusion.
- Leave the EVALUATION column blank.
- Apply Guyanese local context throughout.`, in.Subject, in.Grade, in.Topic, in.Duration)
}
