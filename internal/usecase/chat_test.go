package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/arunsingh-creator/CodeBloom/internal/domain/models"
	"github.com/arunsingh-creator/CodeBloom/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCompleter struct {
	configured bool
	reply      string
	err        error
	calls      int
}

func (f *fakeCompleter) Configured() bool { return f.configured }

func (f *fakeCompleter) Complete(_ context.Context, _ string) (string, error) {
	f.calls++
	return f.reply, f.err
}

func newTestChat(t *testing.T, llm Completer) *ChatService {
	t.Helper()
	log, err := logger.New(&logger.Config{Level: "error", Format: "json", Output: "stderr"})
	require.NoError(t, err)
	return NewChatService(llm, log, sharedRecorder())
}

func TestChatSafetyShortCircuits(t *testing.T) {
	llm := &fakeCompleter{configured: true, reply: "should not be used"}
	s := newTestChat(t, llm)

	resp, err := s.Respond(context.Background(), models.ChatRequest{Message: "I have severe pain and heavy bleeding"})
	require.NoError(t, err)

	assert.True(t, resp.SafetyTriggered)
	assert.Contains(t, resp.Response, "URGENT")
	assert.Zero(t, llm.calls)
}

func TestChatOffTopicShortCircuits(t *testing.T) {
	llm := &fakeCompleter{configured: true, reply: "should not be used"}
	s := newTestChat(t, llm)

	resp, err := s.Respond(context.Background(), models.ChatRequest{Message: "what's a good pizza recipe"})
	require.NoError(t, err)

	assert.False(t, resp.SafetyTriggered)
	assert.Contains(t, resp.Response, "reproductive health")
	assert.Zero(t, llm.calls)
}

func TestChatForwardsToModel(t *testing.T) {
	llm := &fakeCompleter{configured: true, reply: "The menstrual cycle has four phases."}
	s := newTestChat(t, llm)

	resp, err := s.Respond(context.Background(), models.ChatRequest{Message: "what are the phases of the menstrual cycle"})
	require.NoError(t, err)

	assert.False(t, resp.SafetyTriggered)
	assert.Equal(t, llm.reply, resp.Response)
	assert.Equal(t, 1, llm.calls)
}

func TestChatUnconfigured(t *testing.T) {
	s := newTestChat(t, &fakeCompleter{configured: false})

	_, err := s.Respond(context.Background(), models.ChatRequest{Message: "tell me about ovulation"})
	assert.ErrorIs(t, err, ErrChatNotConfigured)
}

func TestChatUpstreamError(t *testing.T) {
	llm := &fakeCompleter{configured: true, err: errors.New("rate limited")}
	s := newTestChat(t, llm)

	_, err := s.Respond(context.Background(), models.ChatRequest{Message: "is spotting between periods common"})
	assert.Error(t, err)
}
