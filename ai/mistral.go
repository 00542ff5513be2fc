// Package ai calls Mistral's chat completion API to generate product titles,
// descriptions and tags. Vision prompts go to a pixtral model with the image
// inlined as a base64 data URL; tagging is a plain text prompt.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://api.mistral.ai"

	VisionModel = "pixtral-12b-2409"
	TextModel   = "mistral-large-latest"

	// TitlePrompt and DescriptionPrompt are the two vision prompts the
	// upload flow runs against a product photo.
	TitlePrompt       = "Give me a short title for this picture that is 2-5 words long. This title should describe the picture as a product"
	DescriptionPrompt = "Give me a product description for this picture that is about 6-12 words long."

	defaultDescribePrompt = "Give me a short product description for this picture that is a title of 5-12 words."
)

type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

func New(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 60 * time.Second},
	}
}

// WithBaseURL points the client at a different API endpoint. Used in tests.
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = strings.TrimRight(baseURL, "/")
	return c
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Describe sends a base64-encoded image with a prompt to the vision model
// and returns the generated text.
func (c *Client) Describe(ctx context.Context, imageBase64, prompt string) (string, error) {
	if prompt == "" {
		prompt = defaultDescribePrompt
	}

	content := []map[string]any{
		{"type": "text", "text": prompt},
		{"type": "image_url", "image_url": "data:image/jpeg;base64," + imageBase64},
	}
	return c.chat(ctx, VisionModel, content)
}

// SuggestTags asks the text model for generic tags for a product description
// and returns them as a slice.
func (c *Client) SuggestTags(ctx context.Context, description string) ([]string, error) {
	prompt := fmt.Sprintf(
		"Give me a list of tags for this product description: %s. "+
			"Please give them in a comma separated list and only 5-10. Do not add any other text. "+
			"The tags should be more generic and not specific to the product. "+
			"only commas and no spaces between the tags.",
		description,
	)

	raw, err := c.chat(ctx, TextModel, prompt)
	if err != nil {
		return nil, err
	}
	return ParseTags(raw), nil
}

// ParseTags splits a comma-separated model response into clean tag names.
func ParseTags(raw string) []string {
	var tags []string
	for _, tag := range strings.Split(raw, ",") {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// chat runs one completion. content is either a plain string or the
// text+image content list the vision models expect.
func (c *Client) chat(ctx context.Context, model string, content any) (string, error) {
	payload := map[string]any{
		"model": model,
		"messages": []map[string]any{
			{"role": "user", "content": content},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("mistral: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("mistral: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("mistral: request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("mistral: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("mistral: API error (%d): %s", resp.StatusCode, string(data))
	}

	var parsed chatResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", fmt.Errorf("mistral: parse response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("mistral: empty response")
	}

	return parsed.Choices[0].Message.Content, nil
}
