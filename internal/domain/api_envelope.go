package domain

// Response envelope: {message, data?} on success, {message, error?} on failure.
type APIEnvelope struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ListEnvelope carries pagination fields next to the envelope.
type ListEnvelope struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
	Total   int64  `json:"total"`
	Page    int    `json:"page"`
	Pages   int    `json:"pages"`
}

func Ok(msg string, data any) APIEnvelope  { return APIEnvelope{Message: msg, Data: data} }
func Fail(msg, errText string) APIEnvelope { return APIEnvelope{Message: msg, Error: errText} }
