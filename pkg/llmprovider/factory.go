package llmprovider

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"quicktask/config"
	"quicktask/pkg/gemini"
	"quicktask/pkg/log"
)

// OpenAI-compatible endpoints known by provider name.
var openAICompatible = map[string]struct {
	baseURL string
	model   string
}{
	"openai":   {baseURL: "", model: "gpt-4o-mini"},
	"github":   {baseURL: "https://models.github.ai/inference", model: "openai/gpt-4.1"},
	"qwen":     {baseURL: "https://dashscope-intl.aliyuncs.com/compatible-mode/v1", model: "qwen-plus"},
	"alibaba":  {baseURL: "https://dashscope-intl.aliyuncs.com/compatible-mode/v1", model: "qwen-plus"},
	"deepseek": {baseURL: "https://api.deepseek.com/v1", model: "deepseek-chat"},
}

// InitializeProviders creates Provider instances from config.LLMConfig.
// Returns providers sorted by priority (ascending) with disabled providers filtered out.
// Providers that fail to initialize are skipped as long as one succeeds.
func InitializeProviders(ctx context.Context, cfg *config.LLMConfig, l log.Logger) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	var enabled []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabled = append(enabled, p)
		}
	}
	if len(enabled) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	sort.SliceStable(enabled, func(i, j int) bool {
		return enabled[i].Priority < enabled[j].Priority
	})

	var (
		providers  []Provider
		initErrors []string
	)
	for _, p := range enabled {
		provider, err := createProvider(p)
		if err != nil {
			msg := fmt.Sprintf("provider %s (priority %d): %v", p.Name, p.Priority, err)
			initErrors = append(initErrors, msg)
			l.Warnf(ctx, "llmprovider.InitializeProviders: skipping %s", msg)
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("no providers successfully initialized: %s", strings.Join(initErrors, "; "))
	}

	return providers, nil
}

// createProvider creates a concrete provider instance based on the provider config
func createProvider(cfg config.ProviderConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	var timeout time.Duration
	if cfg.Timeout != "" {
		d, err := time.ParseDuration(cfg.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid timeout %q: %w", cfg.Timeout, err)
		}
		timeout = d
	}

	if cfg.Name == "gemini" {
		client, err := gemini.New(gemini.Config{
			APIKey: cfg.APIKey,
			Model:  cfg.Model,
			APIURL: cfg.BaseURL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return NewGeminiAdapter(client, timeout), nil
	}

	known, ok := openAICompatible[cfg.Name]
	if !ok {
		return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = known.baseURL
	}
	model := cfg.Model
	if model == "" {
		model = known.model
	}

	return NewOpenAIAdapter(cfg.Name, OpenAIConfig{
		APIKey:  cfg.APIKey,
		BaseURL: baseURL,
		Model:   model,
		Timeout: timeout,
	}), nil
}
