package constant

// User-facing error messages. The Polish literals match what the StreamingHub
// frontend displays verbatim.
const (
	MsgMissingMessage   = "Brak wiadomości"
	MsgNoCompletion     = "Brak odpowiedzi z OpenAI"
	MsgServerError      = "Błąd serwera"
	MsgMethodNotAllowed = "Method not allowed"
)
