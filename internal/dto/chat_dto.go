package dto

// ChatTurn is one entry of the caller-supplied transcript. The backend never
// stores it; the client replays the full history on every turn.
type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Message             string     `json:"message" validate:"required"`
	ConversationHistory []ChatTurn `json:"conversationHistory"`
}

type ChatResponse struct {
	Response                string `json:"response"`
	ReadyForRecommendations bool   `json:"readyForRecommendations"`
}
