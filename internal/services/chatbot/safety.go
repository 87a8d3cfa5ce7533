package chatbot

import "strings"

func containsAny(message string, keywords []string) bool {
	lower := strings.ToLower(message)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// CheckEmergency reports whether the message describes a situation that
// needs immediate medical attention.
func CheckEmergency(message string) bool {
	return containsAny(message, emergencyKeywords)
}

// CheckUnsafe reports whether the message asks for advice that could
// cause physical harm.
func CheckUnsafe(message string) bool {
	return containsAny(message, unsafeKeywords)
}

// IsObviouslyOffTopic reports whether the message is clearly unrelated to
// reproductive health. A message only counts as off-topic when it matches
// an off-topic keyword and no health-related keyword, so mixed questions
// still reach the assistant.
func IsObviouslyOffTopic(message string) bool {
	return containsAny(message, offTopicKeywords) &&
		!containsAny(message, healthRelatedKeywords)
}

// OffTopicResponse returns the canned reply for off-topic questions.
func OffTopicResponse() string {
	return offTopicResponse
}

// SafetyResponse returns a fixed response for messages that trip the
// safety filters. The second return value is false when the message is
// safe to forward to the language model.
func SafetyResponse(message string) (string, bool) {
	if CheckEmergency(message) {
		return emergencyResponse, true
	}
	if CheckUnsafe(message) {
		return unsafeResponse, true
	}
	return "", false
}
