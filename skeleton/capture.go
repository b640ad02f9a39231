package skeleton

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
)

// Capture is the record emitted for one successful synthesis: what was
// copied, from where, when. Sinks receive these; the history store persists
// them.
type Capture struct {
	ID         string `json:"id"` // UUIDv7
	PageURL    string `json:"page_url"`
	Tag        string `json:"tag"` // root element tag
	Markup     string `json:"markup"`
	MarkupHash string `json:"markup_hash"` // SHA-256 hex
	Timestamp  int64  `json:"timestamp"`   // epoch milliseconds
}

// MarshalCapture serialises a Capture to JSON.
func MarshalCapture(c *Capture) ([]byte, error) {
	return json.Marshal(c)
}

// UnmarshalCapture deserialises a Capture from JSON.
func UnmarshalCapture(data []byte) (*Capture, error) {
	var c Capture
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// HashMarkup returns the SHA-256 hex digest of a markup string.
func HashMarkup(markup string) string {
	h := sha256.Sum256([]byte(markup))
	return fmt.Sprintf("%x", h)
}
