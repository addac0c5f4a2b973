package handler

// Envelope is the uniform outcome returned by every endpoint: a success
// flag, an optional human-readable message, and an optional data payload.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func ok(message string, data any) Envelope {
	return Envelope{Success: true, Message: message, Data: data}
}
