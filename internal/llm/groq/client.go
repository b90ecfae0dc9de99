package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/finadvisor/finadvisor/internal/common"
	"github.com/finadvisor/finadvisor/internal/llm"
)

var (
	_ llm.Analyzer = (*Client)(nil)
	_ llm.Adviser  = (*Client)(nil)
)

// Analyze implements llm.Analyzer. The model reply is stripped of chat
// decoration, validated against the analysis schema, and unmarshaled. A
// transport or API failure is an analysis error; a reply that cannot be
// parsed into the schema is a malformed-analysis error.
func (c *Client) Analyze(ctx context.Context, text string) (llm.Analysis, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.logger.Info("llm.analyze.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"text_len", len(text),
	)

	content, err := c.complete(ctx, llm.BuildAnalysisPrompt(text))
	if err != nil {
		c.logger.Error("llm.analyze.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.Analysis{}, nil, common.NewError(common.KindAnalysis, "model invocation failed", err)
	}

	raw := []byte(llm.StripReplyEnvelope(content))
	if err := llm.ValidateAnalysis(raw); err != nil {
		c.logger.Error("llm.analyze.schema_validation_failed",
			"req_id", rid, "error", err, "content", string(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.Analysis{}, raw, common.NewError(common.KindMalformedAnalysis, "model reply does not match analysis schema", err)
	}

	var out llm.Analysis
	if err := json.Unmarshal(raw, &out); err != nil {
		c.logger.Error("llm.analyze.unmarshal_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.Analysis{}, raw, common.NewError(common.KindMalformedAnalysis, "cannot decode model reply", err)
	}

	c.logger.Info("llm.analyze.ok",
		"req_id", rid,
		"document_type", out.DocumentType,
		"key_details", len(out.KeyDetails),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, raw, nil
}

// Advise implements llm.Adviser: one prompt-response advice call, plain text.
func (c *Client) Advise(ctx context.Context, query string) (string, error) {
	rid := uuid.New().String()
	content, err := c.complete(ctx, llm.BuildAdvicePrompt(query))
	if err != nil {
		c.logger.Error("llm.advise.http_error", "req_id", rid, "error", err)
		return "", common.NewError(common.KindAnalysis, "model invocation failed", err)
	}
	return strings.TrimSpace(content), nil
}

// complete sends a single-message chat completion and returns the first
// choice's content.
func (c *Client) complete(ctx context.Context, prompt string) (string, error) {
	body := map[string]any{
		"model":       c.cfg.Model,
		"temperature": c.cfg.Temperature,
		"messages": []map[string]any{
			{"role": "user", "content": prompt},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	raw, err := c.post(ctx, endpoint, body)
	if err != nil {
		return "", err
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		return "", fmt.Errorf("decode groq response: %w", err)
	}
	if len(cc.Choices) == 0 {
		return "", fmt.Errorf("no choices in groq response")
	}
	return cc.Choices[0].Message.Content, nil
}

func (c *Client) post(ctx context.Context, url string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("groq http error: %w", err)
	}
	defer func(body io.ReadCloser) {
		if cerr := body.Close(); cerr != nil {
			c.logger.Warn("groq response body close error", "error", cerr)
		}
	}(resp.Body)

	buf := new(bytes.Buffer)
	_, rerr := buf.ReadFrom(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("groq status %d: %s", resp.StatusCode, buf.String())
	}
	if rerr != nil {
		// A truncated success body is a transport failure, not a reply the
		// model produced.
		return nil, fmt.Errorf("read groq response: %w", rerr)
	}
	return buf.Bytes(), nil
}
