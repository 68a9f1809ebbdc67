package translate

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/triply/travelhub/core"
	"github.com/triply/travelhub/plugins"
)

// MockClient substitutes deterministic-shape translations when no API key
// is configured. Translated text is the original annotated with the target
// language code, so output shape matches the live client.
type MockClient struct {
	mu  sync.Mutex
	rng *rand.Rand
}

var _ plugins.TranslationClient = (*MockClient)(nil)

// NewMockClient creates a mock translation client with the given random source
func NewMockClient(rng *rand.Rand) *MockClient {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &MockClient{rng: rng}
}

func (m *MockClient) confidence(min, max float64) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	v := min + m.rng.Float64()*(max-min)
	return math.Round(v*100) / 100
}

// Translate produces an annotated pseudo-translation
func (m *MockClient) Translate(_ context.Context, text, source, target string) (*core.TranslationResult, error) {
	sourceLang := source
	if sourceLang == "" {
		sourceLang, _ = detectByScript(text)
	}

	return &core.TranslationResult{
		OriginalText:   text,
		TranslatedText: fmt.Sprintf("[%s] %s", languageCode(strings.ToLower(target)), text),
		SourceLanguage: languageCode(strings.ToLower(sourceLang)),
		TargetLanguage: languageCode(strings.ToLower(target)),
		Confidence:     m.confidence(0.85, 0.99),
	}, nil
}

// Detect guesses the language from the script of the text
func (m *MockClient) Detect(_ context.Context, text string) (string, float64, error) {
	language, certain := detectByScript(text)
	if certain {
		return languageCode(language), m.confidence(0.9, 0.99), nil
	}
	return languageCode(language), m.confidence(0.7, 0.9), nil
}

// Phrases serves curated travel phrases from the static phrasebook
func (m *MockClient) Phrases(_ context.Context, language, category string) (map[string]string, error) {
	return phrasesFor(language, category)
}

// LanguageForDestination resolves a destination's primary language
func (m *MockClient) LanguageForDestination(destination string) string {
	return languageForDestination(destination)
}

// detectByScript classifies text by unicode script. The boolean reports
// whether the script was unambiguous.
func detectByScript(text string) (string, bool) {
	for _, r := range text {
		switch {
		case unicode.Is(unicode.Hiragana, r) || unicode.Is(unicode.Katakana, r):
			return "japanese", true
		case unicode.Is(unicode.Hangul, r):
			return "korean", true
		case unicode.Is(unicode.Arabic, r):
			return "arabic", true
		case unicode.Is(unicode.Thai, r):
			return "thai", true
		case unicode.Is(unicode.Devanagari, r):
			return "hindi", true
		case unicode.Is(unicode.Han, r):
			return "japanese", false
		}
	}
	return "english", false
}
