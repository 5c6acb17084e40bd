package llmprovider

import (
	"context"
	"fmt"
	"time"

	"deal-tracker/pkg/log"
	"deal-tracker/pkg/openai"
)

// Manager orchestrates provider selection, fallback, and retry logic
type Manager struct {
	providers []Provider
	config    *Config
	logger    log.Logger
}

// Config defines configuration for the Provider Manager
type Config struct {
	FallbackEnabled bool
	// RetryAttempts is the number of tries per provider; values below 1 mean a single try.
	RetryAttempts   int
	RetryDelay      time.Duration
	MaxTotalTimeout time.Duration
}

// NewManager creates a new Provider Manager with the given providers, config, and logger
func NewManager(providers []Provider, config *Config, logger log.Logger) *Manager {
	if config == nil {
		config = &Config{}
	}
	return &Manager{
		providers: providers,
		config:    config,
		logger:    logger,
	}
}

// Model returns the model of the highest priority provider.
func (m *Manager) Model() string {
	if len(m.providers) == 0 {
		return ""
	}
	return m.providers[0].Model()
}

// CreateChatCompletion iterates through providers in priority order with fallback logic
func (m *Manager) CreateChatCompletion(ctx context.Context, req *openai.ChatCompletionRequest) (*openai.ChatCompletionResponse, error) {
	if len(m.providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}
	if req == nil || len(req.Messages) == 0 {
		return nil, ErrInvalidRequest
	}

	// Global timeout for entire fallback chain
	var cancel context.CancelFunc
	if m.config.MaxTotalTimeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	var lastErr error
	tried := 0

	for i, provider := range m.providers {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("global timeout exceeded after trying %d provider(s): %w", tried, ctx.Err())
		default:
		}

		tried++
		resp, err := m.generateWithRetry(ctx, provider, requestFor(i, provider, req))
		if err == nil {
			m.logSuccess(ctx, provider, resp)
			return resp, nil
		}

		m.logFailure(ctx, provider, err)
		lastErr = err

		if !m.config.FallbackEnabled {
			break
		}
	}

	return nil, fmt.Errorf("%w: %w", ErrAllProvidersFailed, lastErr)
}

// requestFor keeps the caller's model for the primary provider. Fallback providers get
// their own configured model.
func requestFor(i int, provider Provider, req *openai.ChatCompletionRequest) *openai.ChatCompletionRequest {
	if i == 0 || req.Model == "" || req.Model == provider.Model() {
		return req
	}
	fallback := *req
	fallback.Model = provider.Model()
	return &fallback
}

// generateWithRetry implements retry mechanism with linear backoff
func (m *Manager) generateWithRetry(ctx context.Context, provider Provider, req *openai.ChatCompletionRequest) (*openai.ChatCompletionResponse, error) {
	attempts := m.config.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			delay := time.Duration(attempt) * m.config.RetryDelay
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		start := time.Now()
		resp, err := provider.CreateChatCompletion(ctx, req)
		requestDuration.WithLabelValues(provider.Name()).Observe(time.Since(start).Seconds())
		if err == nil {
			requestsTotal.WithLabelValues(provider.Name(), "success").Inc()
			return resp, nil
		}

		requestsTotal.WithLabelValues(provider.Name(), "error").Inc()
		lastErr = err
	}

	return nil, lastErr
}

func (m *Manager) logSuccess(ctx context.Context, provider Provider, resp *openai.ChatCompletionResponse) {
	tokensTotal.WithLabelValues(provider.Name(), "input").Add(float64(resp.Usage.PromptTokens))
	tokensTotal.WithLabelValues(provider.Name(), "output").Add(float64(resp.Usage.CompletionTokens))

	m.logger.Infof(ctx, "LLM generation successful: provider=%s model=%s input_tokens=%d output_tokens=%d",
		provider.Name(), provider.Model(), resp.Usage.PromptTokens, resp.Usage.CompletionTokens)
}

func (m *Manager) logFailure(ctx context.Context, provider Provider, err error) {
	m.logger.Warnf(ctx, "LLM generation failed: provider=%s model=%s error=%v",
		provider.Name(), provider.Model(), err)
}
