package chatbot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckEmergency(t *testing.T) {
	assert.True(t, CheckEmergency("I have SEVERE PAIN in my abdomen"))
	assert.True(t, CheckEmergency("she fainted earlier today"))
	assert.False(t, CheckEmergency("my period is a few days late"))
}

func TestCheckUnsafe(t *testing.T) {
	assert.True(t, CheckUnsafe("how do I do an abortion at home"))
	assert.False(t, CheckUnsafe("what contraception methods exist"))
}

func TestIsObviouslyOffTopic(t *testing.T) {
	assert.True(t, IsObviouslyOffTopic("what's the best pizza recipe"))
	assert.True(t, IsObviouslyOffTopic("who won the football match"))

	// health keyword overrides an off-topic match
	assert.False(t, IsObviouslyOffTopic("can cooking smells trigger pregnancy nausea"))
	assert.False(t, IsObviouslyOffTopic("why are my cramps worse this cycle"))
}

func TestSafetyResponse(t *testing.T) {
	resp, triggered := SafetyResponse("I feel suicidal")
	assert.True(t, triggered)
	assert.Contains(t, resp, "emergency")

	resp, triggered = SafetyResponse("tell me about diy surgery")
	assert.True(t, triggered)
	assert.Contains(t, resp, "harmful")

	// emergency takes precedence over unsafe
	resp, triggered = SafetyResponse("severe pain after dangerous pills")
	assert.True(t, triggered)
	assert.Contains(t, resp, "URGENT")

	resp, triggered = SafetyResponse("what is ovulation")
	assert.False(t, triggered)
	assert.Empty(t, resp)
}

func TestClientConfigured(t *testing.T) {
	assert.False(t, NewClient(ClientConfig{}).Configured())
	assert.True(t, NewClient(ClientConfig{APIKey: "k"}).Configured())
}
