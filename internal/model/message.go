// Package model defines the core domain models used throughout the application.
package model

// Message is a single inbound chat message. It is transient: one value is
// created per inbound event and never persisted by this core.
type Message struct {
	Body     string
	Media    *Media
	HasMedia bool
}

// Media carries the raw attachment bytes for a message, if any.
type Media struct {
	Mimetype string
	Bytes    []byte
}

// IsImage reports whether the attachment looks like a photographed receipt.
func (m *Media) IsImage() bool {
	if m == nil {
		return false
	}
	return len(m.Mimetype) >= 6 && m.Mimetype[:6] == "image/"
}
