package constant

const (
	ChatMessageRoleUser      = "user"
	ChatMessageRoleAssistant = "assistant"
	ChatMessageRoleSystem    = "system"

	// ReadySentinel is the literal marker the model is instructed to emit once
	// it has gathered enough preference signal. ReadySentinelKeyword is the
	// bare token used for detection; stripping removes the full marker.
	ReadySentinel        = "=== GOTOWE_DO_REKOMENDACJI ==="
	ReadySentinelKeyword = "GOTOWE_DO_REKOMENDACJI"

	// Catalog bounds per endpoint. Chat grounding stays small to keep the
	// system prompt within the model's context window; the recommendation
	// prompt sees the whole catalog.
	ChatCatalogLimit = 50
	MovieListLimit   = 100
)
