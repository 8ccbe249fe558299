package types

// Envelope mirrors the hashing service's response body for both outcomes.
// Success bodies carry Timestamp and Data; failure bodies carry Timestamp,
// Message, Status, an optional Code and an optional file echo in Data.
type Envelope struct {
	Success   bool          `json:"success"`
	Timestamp string        `json:"timestamp"`
	Message   string        `json:"message,omitempty"`
	Status    int           `json:"status,omitempty"`
	Code      string        `json:"code,omitempty"`
	Data      *EnvelopeData `json:"data,omitempty"`
}

// EnvelopeData is the payload half of the envelope. File is base64-encoded.
type EnvelopeData struct {
	File     string         `json:"file,omitempty"`
	Hash     string         `json:"hash,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
	Filename string         `json:"filename,omitempty"`
	FileType string         `json:"fileType,omitempty"`
}
