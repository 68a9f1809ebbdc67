// Package bootstrap assembles the application: providers, tool registry
// and orchestrator, driven by the loaded configuration.
package bootstrap

import (
	"context"

	"github.com/firebase/genkit/go/genkit"
	"github.com/triply/travelhub/config"
	"github.com/triply/travelhub/log"
	"github.com/triply/travelhub/orchestrator"
	"github.com/triply/travelhub/plugins"
	"github.com/triply/travelhub/plugins/currency"
	"github.com/triply/travelhub/plugins/inventory"
	"github.com/triply/travelhub/plugins/translate"
	"github.com/triply/travelhub/plugins/travel"
	"github.com/triply/travelhub/plugins/weather"
	"github.com/triply/travelhub/tools"
)

// App holds the initialized components of the application
type App struct {
	Genkit       *genkit.Genkit
	Registry     *tools.Registry
	Orchestrator *orchestrator.Orchestrator
}

// Setup initializes the providers and registers every tool. Each provider
// runs live when its credential is configured and falls back to the mock
// implementation otherwise; callers never see which one they got.
func Setup(ctx context.Context, cfg *config.Config) (*App, error) {
	gk := genkit.Init(ctx)
	registry := tools.NewRegistry()

	timeout := cfg.Providers.Timeout

	var weatherClient plugins.WeatherClient
	if cfg.Weather.APIKey != "" {
		log.Infof(ctx, "weather provider: live (%s)", cfg.Weather.BaseURL)
		weatherClient = weather.NewClient(cfg.Weather.BaseURL, cfg.Weather.APIKey, timeout,
			plugins.NewLimiter(cfg.Providers.RPS, cfg.Providers.Burst))
	} else {
		log.Infof(ctx, "weather provider: mock (no API key configured)")
		weatherClient = weather.NewMockClient(nil)
	}

	var currencyClient plugins.CurrencyClient
	if cfg.Currency.APIKey != "" {
		log.Infof(ctx, "currency provider: live (%s)", cfg.Currency.BaseURL)
		currencyClient = currency.NewClient(cfg.Currency.BaseURL, cfg.Currency.APIKey, timeout,
			plugins.NewLimiter(cfg.Providers.RPS, cfg.Providers.Burst))
	} else {
		log.Infof(ctx, "currency provider: mock (no API key configured)")
		currencyClient = currency.NewMockClient(nil)
	}

	var translationClient plugins.TranslationClient
	if cfg.Translation.APIKey != "" {
		log.Infof(ctx, "translation provider: live (%s)", cfg.Translation.BaseURL)
		translationClient = translate.NewClient(cfg.Translation.BaseURL, cfg.Translation.APIKey, timeout,
			plugins.NewLimiter(cfg.Providers.RPS, cfg.Providers.Burst))
	} else {
		log.Infof(ctx, "translation provider: mock (no API key configured)")
		translationClient = translate.NewMockClient(nil)
	}

	// Flights, hotels and activities have no live upstream
	inventoryClient := inventory.NewClient(nil)

	weather.RegisterTools(weatherClient, timeout, gk, registry)
	currency.RegisterTools(currencyClient, timeout, gk, registry)
	translate.RegisterTools(translationClient, gk, registry)

	orch := orchestrator.New(weatherClient, currencyClient, translationClient, inventoryClient, timeout)
	travel.RegisterTools(orch, gk, registry)

	log.Infof(ctx, "registered %d tools", len(registry.GetTools()))

	return &App{
		Genkit:       gk,
		Registry:     registry,
		Orchestrator: orch,
	}, nil
}
