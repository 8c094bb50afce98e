package domain

// AppInfo is the JSON body of the root endpoint
type AppInfo struct {
	Name    string `json:"name"`
	Build   string `json:"build"`
	Success bool   `json:"success"`
}

// ErrorPayload is returned whenever a request does not succeed
type ErrorPayload struct {
	Reason  string `json:"reason"`
	Success bool   `json:"success"`
}

// NewErrorPayload builds an unsuccessful payload with the given reason
func NewErrorPayload(reason string) ErrorPayload {
	return ErrorPayload{Reason: reason, Success: false}
}
