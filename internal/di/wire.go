//go:build wireinject
// +build wireinject

package di

import (
	"github.com/arunsingh-creator/CodeBloom/internal/services/chatbot"
	"github.com/arunsingh-creator/CodeBloom/internal/usecase"
	"github.com/arunsingh-creator/CodeBloom/pkg/config"
	"github.com/arunsingh-creator/CodeBloom/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,

		// Use cases
		ProvidePredictor,
		ProvideChatClient,
		wire.Bind(new(usecase.Completer), new(*chatbot.Client)),
		ProvideChatService,
		ProvideRateLimiter,

		// HTTP handlers
		ProvidePredictionHandler,
		ProvideChatHandler,
		ProvidePCOSHandler,
		ProvideHealthHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
