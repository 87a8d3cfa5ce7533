package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/arunsingh-creator/CodeBloom/internal/domain/models"
	"github.com/arunsingh-creator/CodeBloom/internal/services/chatbot"
	"github.com/arunsingh-creator/CodeBloom/pkg/logger"
	"github.com/arunsingh-creator/CodeBloom/pkg/metrics"
)

// ErrChatNotConfigured indicates the upstream model has no API key.
var ErrChatNotConfigured = errors.New("chatbot service is not configured")

// Completer is the upstream language model surface the chat flow needs.
type Completer interface {
	Configured() bool
	Complete(ctx context.Context, message string) (string, error)
}

// ChatService runs the layered chat flow: local safety filters answer
// emergency, unsafe and obviously off-topic messages without any upstream
// call; everything else goes to the language model.
type ChatService struct {
	llm     Completer
	log     *logger.Logger
	metrics *metrics.Recorder
}

func NewChatService(llm Completer, log *logger.Logger, rec *metrics.Recorder) *ChatService {
	return &ChatService{llm: llm, log: log, metrics: rec}
}

// Configured reports whether the upstream model can be reached.
func (s *ChatService) Configured() bool {
	return s.llm.Configured()
}

// Respond answers one chat message.
func (s *ChatService) Respond(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error) {
	if resp, triggered := chatbot.SafetyResponse(req.Message); triggered {
		s.metrics.RecordChat("safety")
		s.log.Warn("chat safety filter triggered")
		return models.ChatResponse{Response: resp, SafetyTriggered: true}, nil
	}

	if chatbot.IsObviouslyOffTopic(req.Message) {
		s.metrics.RecordChat("off_topic")
		return models.ChatResponse{Response: chatbot.OffTopicResponse(), SafetyTriggered: false}, nil
	}

	if !s.llm.Configured() {
		s.metrics.RecordChat("error")
		return models.ChatResponse{}, ErrChatNotConfigured
	}

	reply, err := s.llm.Complete(ctx, req.Message)
	if err != nil {
		s.metrics.RecordChat("error")
		s.log.Error("chat completion failed", logger.Error(err))
		return models.ChatResponse{}, fmt.Errorf("chat completion: %w", err)
	}

	s.metrics.RecordChat("answered")
	return models.ChatResponse{Response: reply, SafetyTriggered: false}, nil
}
