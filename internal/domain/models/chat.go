package models

// ChatRequest is a chatbot interaction request.
type ChatRequest struct {
	Message string `json:"message" validate:"required,min=1,max=4000"`
}

// ChatResponse is a chatbot interaction response. SafetyTriggered is true
// when the local filter answered without calling the upstream model.
type ChatResponse struct {
	Response        string `json:"response"`
	SafetyTriggered bool   `json:"safety_triggered"`
}
