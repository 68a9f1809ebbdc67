package translate

import (
	"context"
	"fmt"
	"strings"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"
	"github.com/triply/travelhub/core"
	"github.com/triply/travelhub/log"
	"github.com/triply/travelhub/plugins"
	toolspkg "github.com/triply/travelhub/tools"
)

// RegisterTools wires all translation tools for the given client
func RegisterTools(client plugins.TranslationClient, gk *genkit.Genkit, registry *toolspkg.Registry) {
	if gk == nil || registry == nil {
		return
	}
	NewTranslateTextTool(client, gk, registry)
	NewDetectLanguageTool(client, gk, registry)
	NewTravelPhrasesTool(client, gk, registry)
	NewDestinationInfoTool(client, gk, registry)
}

// --- Translate Text Tool ---

type TranslateTextInput struct {
	Text           string `json:"text" validate:"required" description:"Text to translate"`
	TargetLanguage string `json:"targetLanguage" validate:"required" description:"Language to translate into (name or ISO code)"`
	SourceLanguage string `json:"sourceLanguage,omitempty" description:"Source language, detected when omitted"`
}

type TranslateTextTool struct {
	client plugins.TranslationClient
}

func NewTranslateTextTool(client plugins.TranslationClient, gk *genkit.Genkit, registry *toolspkg.Registry) *TranslateTextTool {
	t := &TranslateTextTool{client: client}
	if gk == nil || registry == nil {
		return t
	}

	registry.Register(genkit.DefineTool[*TranslateTextInput, *core.TranslationResult](
		gk,
		"translate_text",
		"Translates text into a target language.",
		func(ctx *ai.ToolContext, input *TranslateTextInput) (*core.TranslationResult, error) {
			return t.Execute(ctx, input)
		},
	), func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		var input TranslateTextInput
		if err := toolspkg.DecodeArgs(args, &input); err != nil {
			return nil, err
		}
		return t.Execute(ctx, &input)
	})
	return t
}

func (t *TranslateTextTool) Execute(ctx context.Context, input *TranslateTextInput) (*core.TranslationResult, error) {
	log.Debugf(ctx, "TranslateTextTool executing into %s", input.TargetLanguage)

	if t.client == nil {
		return nil, fmt.Errorf("translation client not initialized")
	}

	result, err := t.client.Translate(ctx, input.Text, input.SourceLanguage, input.TargetLanguage)
	if err != nil {
		log.Errorf(ctx, "TranslateTextTool failed: %v", err)
		return nil, err
	}
	return result, nil
}

// --- Detect Language Tool ---

type DetectLanguageInput struct {
	Text string `json:"text" validate:"required" description:"Text to identify"`
}

type DetectLanguageOutput struct {
	Language   string  `json:"language"`
	Confidence float64 `json:"confidence"`
}

type DetectLanguageTool struct {
	client plugins.TranslationClient
}

func NewDetectLanguageTool(client plugins.TranslationClient, gk *genkit.Genkit, registry *toolspkg.Registry) *DetectLanguageTool {
	t := &DetectLanguageTool{client: client}
	if gk == nil || registry == nil {
		return t
	}

	registry.Register(genkit.DefineTool[*DetectLanguageInput, *DetectLanguageOutput](
		gk,
		"detect_language",
		"Identifies the language of a text with a confidence score.",
		func(ctx *ai.ToolContext, input *DetectLanguageInput) (*DetectLanguageOutput, error) {
			return t.Execute(ctx, input)
		},
	), func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		var input DetectLanguageInput
		if err := toolspkg.DecodeArgs(args, &input); err != nil {
			return nil, err
		}
		return t.Execute(ctx, &input)
	})
	return t
}

func (t *DetectLanguageTool) Execute(ctx context.Context, input *DetectLanguageInput) (*DetectLanguageOutput, error) {
	if t.client == nil {
		return nil, fmt.Errorf("translation client not initialized")
	}

	language, confidence, err := t.client.Detect(ctx, input.Text)
	if err != nil {
		log.Errorf(ctx, "DetectLanguageTool failed: %v", err)
		return nil, err
	}
	return &DetectLanguageOutput{Language: language, Confidence: confidence}, nil
}

// --- Travel Phrases Tool ---

type TravelPhrasesInput struct {
	Language string `json:"language" validate:"required" description:"Language to fetch phrases for"`
	Category string `json:"category,omitempty" validate:"omitempty,oneof=basic emergency food transport accommodation" description:"Phrase category, defaults to basic"`
}

type TravelPhrasesOutput struct {
	Language string            `json:"language"`
	Category string            `json:"category"`
	Phrases  map[string]string `json:"phrases"`
}

type TravelPhrasesTool struct {
	client plugins.TranslationClient
}

func NewTravelPhrasesTool(client plugins.TranslationClient, gk *genkit.Genkit, registry *toolspkg.Registry) *TravelPhrasesTool {
	t := &TravelPhrasesTool{client: client}
	if gk == nil || registry == nil {
		return t
	}

	registry.Register(genkit.DefineTool[*TravelPhrasesInput, *TravelPhrasesOutput](
		gk,
		"get_travel_phrases",
		"Returns essential travel phrases in a language, grouped by category.",
		func(ctx *ai.ToolContext, input *TravelPhrasesInput) (*TravelPhrasesOutput, error) {
			return t.Execute(ctx, input)
		},
	), func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		var input TravelPhrasesInput
		if err := toolspkg.DecodeArgs(args, &input); err != nil {
			return nil, err
		}
		return t.Execute(ctx, &input)
	})
	return t
}

func (t *TravelPhrasesTool) Execute(ctx context.Context, input *TravelPhrasesInput) (*TravelPhrasesOutput, error) {
	log.Debugf(ctx, "TravelPhrasesTool executing for %s/%s", input.Language, input.Category)

	if t.client == nil {
		return nil, fmt.Errorf("translation client not initialized")
	}

	category := input.Category
	if category == "" {
		category = DefaultCategory
	}

	phrases, err := t.client.Phrases(ctx, input.Language, category)
	if err != nil {
		log.Errorf(ctx, "TravelPhrasesTool failed: %v", err)
		return nil, err
	}

	return &TravelPhrasesOutput{
		Language: strings.ToLower(input.Language),
		Category: category,
		Phrases:  phrases,
	}, nil
}

// --- Destination Info Tool ---

// destinationContent holds the English source content per content type;
// the destination name is interpolated before translation.
var destinationContent = map[string]string{
	"guide":     "Welcome to %s. Explore the historic center, visit the main museums, and try the local cuisine. Most attractions are open from morning until early evening.",
	"menu":      "Popular dishes in %s include regional specialties, seasonal vegetables and fresh bread. Ask your server for today's recommendation.",
	"signs":     "Common signs in %s: entrance, exit, open, closed, push, pull, no smoking, restrooms.",
	"emergency": "In %s, dial the local emergency number for police, fire or medical help. Keep a copy of your passport with you.",
	"customs":   "Visitors to %s should greet politely, respect local dress codes at religious sites, and check tipping customs before dining out.",
}

// DefaultContentType is used when a content type is not provided
const DefaultContentType = "guide"

type DestinationInfoInput struct {
	Destination    string `json:"destination" validate:"required" description:"Destination city name"`
	TargetLanguage string `json:"targetLanguage" validate:"required" description:"Language to translate the content into"`
	ContentType    string `json:"contentType,omitempty" validate:"omitempty,oneof=guide menu signs emergency customs" description:"Kind of content, defaults to guide"`
}

type DestinationInfoOutput struct {
	Destination    string  `json:"destination"`
	ContentType    string  `json:"contentType"`
	TargetLanguage string  `json:"targetLanguage"`
	Original       string  `json:"original"`
	Translated     string  `json:"translated"`
	Confidence     float64 `json:"confidence"`
}

type DestinationInfoTool struct {
	client plugins.TranslationClient
}

func NewDestinationInfoTool(client plugins.TranslationClient, gk *genkit.Genkit, registry *toolspkg.Registry) *DestinationInfoTool {
	t := &DestinationInfoTool{client: client}
	if gk == nil || registry == nil {
		return t
	}

	registry.Register(genkit.DefineTool[*DestinationInfoInput, *DestinationInfoOutput](
		gk,
		"translate_destination_info",
		"Returns destination content (guide, menu, signs, emergency, customs) translated into a target language.",
		func(ctx *ai.ToolContext, input *DestinationInfoInput) (*DestinationInfoOutput, error) {
			return t.Execute(ctx, input)
		},
	), func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		var input DestinationInfoInput
		if err := toolspkg.DecodeArgs(args, &input); err != nil {
			return nil, err
		}
		return t.Execute(ctx, &input)
	})
	return t
}

func (t *DestinationInfoTool) Execute(ctx context.Context, input *DestinationInfoInput) (*DestinationInfoOutput, error) {
	log.Debugf(ctx, "DestinationInfoTool executing for %s (%s)", input.Destination, input.ContentType)

	if t.client == nil {
		return nil, fmt.Errorf("translation client not initialized")
	}

	contentType := input.ContentType
	if contentType == "" {
		contentType = DefaultContentType
	}
	template, ok := destinationContent[contentType]
	if !ok {
		template = destinationContent[DefaultContentType]
	}
	original := fmt.Sprintf(template, input.Destination)

	result, err := t.client.Translate(ctx, original, "english", input.TargetLanguage)
	if err != nil {
		log.Errorf(ctx, "DestinationInfoTool failed: %v", err)
		return nil, err
	}

	return &DestinationInfoOutput{
		Destination:    input.Destination,
		ContentType:    contentType,
		TargetLanguage: result.TargetLanguage,
		Original:       original,
		Translated:     result.TranslatedText,
		Confidence:     result.Confidence,
	}, nil
}
