package di

import (
	"fmt"

	"github.com/arunsingh-creator/CodeBloom/internal/handler/api"
	"github.com/arunsingh-creator/CodeBloom/internal/services/chatbot"
	"github.com/arunsingh-creator/CodeBloom/internal/services/ratelimit"
	"github.com/arunsingh-creator/CodeBloom/internal/usecase"
	"github.com/arunsingh-creator/CodeBloom/pkg/config"
	"github.com/arunsingh-creator/CodeBloom/pkg/logger"
	"github.com/arunsingh-creator/CodeBloom/pkg/metrics"
	"github.com/arunsingh-creator/CodeBloom/pkg/server"
)

// Version is reported by the root and health endpoints.
const Version = "2.0.0"

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*logger.Logger, error) {
	l, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates the Prometheus metrics recorder.
func ProvideMetrics() *metrics.Recorder {
	return metrics.New()
}

// ProvidePredictor builds the cycle prediction pipeline.
func ProvidePredictor(cfg *config.Config, l *logger.Logger, rec *metrics.Recorder) (*usecase.CyclePredictor, error) {
	return usecase.NewCyclePredictor(usecase.PredictorConfig{
		MinHistory: cfg.Predictor.MinHistory,
		MaxHistory: cfg.Predictor.MaxHistory,
		HiddenSize: cfg.Predictor.HiddenSize,
		WeightSeed: cfg.Predictor.WeightSeed,
	}, l, rec)
}

// ProvideChatClient creates the upstream completion client.
func ProvideChatClient(cfg *config.Config) *chatbot.Client {
	return chatbot.NewClient(chatbot.ClientConfig{
		APIKey:      cfg.Chatbot.APIKey,
		BaseURL:     cfg.Chatbot.BaseURL,
		Model:       cfg.Chatbot.Model,
		Temperature: cfg.Chatbot.Temperature,
		MaxTokens:   cfg.Chatbot.MaxTokens,
		Timeout:     cfg.Chatbot.Timeout,
	})
}

// ProvideChatService creates the layered chat flow.
func ProvideChatService(llm usecase.Completer, l *logger.Logger, rec *metrics.Recorder) *usecase.ChatService {
	return usecase.NewChatService(llm, l, rec)
}

// ProvideRateLimiter creates the per-client chat rate limiter.
func ProvideRateLimiter(cfg *config.Config) *ratelimit.Limiter {
	capacity := cfg.Chatbot.RateLimit.Capacity
	refill := cfg.Chatbot.RateLimit.RefillPerSec
	if capacity <= 0 {
		capacity = 10
	}
	if refill <= 0 {
		refill = 0.5
	}
	return ratelimit.New(capacity, refill)
}

// ProvidePredictionHandler creates the prediction endpoints handler.
func ProvidePredictionHandler(l *logger.Logger, p *usecase.CyclePredictor) *api.PredictionEchoHandler {
	return api.NewPredictionEchoHandler(l, p)
}

// ProvideChatHandler creates the chatbot endpoint handler.
func ProvideChatHandler(l *logger.Logger, chat *usecase.ChatService, rl *ratelimit.Limiter) *api.ChatEchoHandler {
	return api.NewChatEchoHandler(l, chat, rl)
}

// ProvidePCOSHandler creates the PCOS screening endpoint handler.
func ProvidePCOSHandler(l *logger.Logger) *api.PCOSEchoHandler {
	return api.NewPCOSEchoHandler(l)
}

// ProvideHealthHandler creates the root and health endpoints handler.
func ProvideHealthHandler(cfg *config.Config, l *logger.Logger, p *usecase.CyclePredictor, chat *usecase.ChatService) *api.HealthEchoHandler {
	return api.NewHealthEchoHandler(l, p, chat, cfg.Chatbot.Model, Version)
}

// ProvideApp assembles the application server.
func ProvideApp(
	cfg *config.Config,
	l *logger.Logger,
	prediction *api.PredictionEchoHandler,
	chat *api.ChatEchoHandler,
	pcos *api.PCOSEchoHandler,
	health *api.HealthEchoHandler,
) *server.App {
	return server.New(cfg, l, prediction, chat, pcos, health)
}
