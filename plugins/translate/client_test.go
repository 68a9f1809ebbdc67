package translate

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/triply/travelhub/plugins"
)

func TestClient_Translate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "Hello", r.PostForm.Get("q"))
		assert.Equal(t, "fr", r.PostForm.Get("target"))
		assert.Equal(t, "secret", r.URL.Query().Get("key"))
		fmt.Fprint(w, `{"data": {"translations": [{"translatedText": "Bonjour", "detectedSourceLanguage": "en"}]}}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret", time.Second, nil)

	result, err := client.Translate(context.Background(), "Hello", "", "french")
	assert.NoError(t, err)
	assert.Equal(t, "Bonjour", result.TranslatedText)
	assert.Equal(t, "en", result.SourceLanguage)
	assert.Equal(t, "fr", result.TargetLanguage)
}

func TestClient_TranslateEmptyResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data": {"translations": []}}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret", time.Second, nil)

	_, err := client.Translate(context.Background(), "Hello", "", "french")
	assert.Error(t, err)
	assert.True(t, plugins.IsUpstream(err))
}

func TestClient_Detect(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/detect", r.URL.Path)
		fmt.Fprint(w, `{"data": {"detections": [[{"language": "ja", "confidence": 0.98}]]}}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret", time.Second, nil)

	language, confidence, err := client.Detect(context.Background(), "こんにちは")
	assert.NoError(t, err)
	assert.Equal(t, "ja", language)
	assert.Equal(t, 0.98, confidence)
}

func TestClient_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, `{"error": {"message": "API key invalid"}}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, "bad", time.Second, nil)

	_, err := client.Translate(context.Background(), "Hello", "", "french")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "API key invalid")
}

func TestClient_PhrasesAreStatic(t *testing.T) {
	// Phrases never hit the network
	client := NewClient("http://invalid.localhost", "secret", time.Second, nil)

	phrases, err := client.Phrases(context.Background(), "italian", "food")
	assert.NoError(t, err)
	assert.NotEmpty(t, phrases)

	assert.Equal(t, "italian", client.LanguageForDestination("Rome"))
}
