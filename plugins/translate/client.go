package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/triply/travelhub/core"
	"github.com/triply/travelhub/plugins"
	"golang.org/x/time/rate"
)

const providerName = "translation"

// Client is the live translation API implementation of
// plugins.TranslationClient. Phrases and destination languages come from
// the static tables; only translation and detection hit the network.
type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client

	limiter *rate.Limiter
}

var _ plugins.TranslationClient = (*Client)(nil)

// NewClient creates a live translation client
func NewClient(baseURL, apiKey string, timeout time.Duration, limiter *rate.Limiter) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		BaseURL:    baseURL,
		APIKey:     apiKey,
		HTTPClient: &http.Client{Timeout: timeout},
		limiter:    limiter,
	}
}

func (c *Client) post(ctx context.Context, path string, form url.Values, out interface{}) error {
	if err := plugins.WaitLimiter(ctx, c.limiter); err != nil {
		return err
	}

	endpoint := fmt.Sprintf("%s%s?key=%s", c.BaseURL, path, c.APIKey)
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return &plugins.UpstreamError{Provider: providerName, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return &plugins.UpstreamError{
			Provider: providerName,
			Status:   resp.StatusCode,
			Message:  apiErr.Error.Message,
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &plugins.UpstreamError{Provider: providerName, Message: "malformed response: " + err.Error()}
	}
	return nil
}

// Translate translates text into the target language
func (c *Client) Translate(ctx context.Context, text, source, target string) (*core.TranslationResult, error) {
	form := url.Values{}
	form.Set("q", text)
	form.Set("target", languageCode(target))
	form.Set("format", "text")
	if source != "" {
		form.Set("source", languageCode(source))
	}

	var payload struct {
		Data struct {
			Translations []struct {
				TranslatedText         string `json:"translatedText"`
				DetectedSourceLanguage string `json:"detectedSourceLanguage"`
			} `json:"translations"`
		} `json:"data"`
	}
	if err := c.post(ctx, "", form, &payload); err != nil {
		return nil, err
	}
	if len(payload.Data.Translations) == 0 {
		return nil, &plugins.UpstreamError{Provider: providerName, Message: "empty translation response"}
	}

	first := payload.Data.Translations[0]
	detected := source
	if detected == "" {
		detected = first.DetectedSourceLanguage
	}

	return &core.TranslationResult{
		OriginalText:   text,
		TranslatedText: first.TranslatedText,
		SourceLanguage: detected,
		TargetLanguage: languageCode(target),
		Confidence:     1,
	}, nil
}

// Detect identifies the language of a text with a confidence in [0,1]
func (c *Client) Detect(ctx context.Context, text string) (string, float64, error) {
	form := url.Values{}
	form.Set("q", text)

	var payload struct {
		Data struct {
			Detections [][]struct {
				Language   string  `json:"language"`
				Confidence float64 `json:"confidence"`
			} `json:"detections"`
		} `json:"data"`
	}
	if err := c.post(ctx, "/detect", form, &payload); err != nil {
		return "", 0, err
	}
	if len(payload.Data.Detections) == 0 || len(payload.Data.Detections[0]) == 0 {
		return "", 0, &plugins.UpstreamError{Provider: providerName, Message: "empty detection response"}
	}

	detection := payload.Data.Detections[0][0]
	return detection.Language, detection.Confidence, nil
}

// Phrases serves curated travel phrases from the static phrasebook
func (c *Client) Phrases(_ context.Context, language, category string) (map[string]string, error) {
	return phrasesFor(language, category)
}

// LanguageForDestination resolves a destination's primary language
func (c *Client) LanguageForDestination(destination string) string {
	return languageForDestination(destination)
}

func languageForDestination(destination string) string {
	if language, ok := destinationLanguages[destination]; ok {
		return language
	}
	return "english"
}

// phrasesFor is shared by the live and mock clients. For languages outside
// the phrasebook it annotates the English phrase keys instead of erroring.
func phrasesFor(language, category string) (map[string]string, error) {
	language = strings.ToLower(language)
	if phrases := lookupPhrases(language, category); phrases != nil {
		return phrases, nil
	}

	// No curated phrasebook for this language; annotate the keys so the
	// caller still gets the full phrase set.
	base := lookupPhrases("french", category)
	fallback := make(map[string]string, len(base))
	for key := range base {
		fallback[key] = fmt.Sprintf("[%s] %s", languageCode(language), strings.ReplaceAll(key, "_", " "))
	}
	return fallback, nil
}
