package whatsapp

import (
	"fmt"
	"net/url"
	"strings"
)

const defaultRecipient = "212666126924"

// LinkBuilder renders wa.me deep links that open a prefilled chat with
// the dispatch number. The link is handed to the client and opened in a
// new browsing context; nothing here blocks on the messaging service.
type LinkBuilder struct {
	recipient string
}

// NewLinkBuilder returns a builder for the given recipient number
// (digits only, country code included). Empty falls back to the
// dispatch default.
func NewLinkBuilder(recipient string) *LinkBuilder {
	trimmed := strings.TrimSpace(recipient)
	if trimmed == "" {
		trimmed = defaultRecipient
	}
	return &LinkBuilder{recipient: trimmed}
}

// Recipient returns the configured destination number.
func (b *LinkBuilder) Recipient() string {
	return b.recipient
}

// DeepLink URL-encodes the message into the wa.me text parameter.
func (b *LinkBuilder) DeepLink(message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", b.recipient, url.QueryEscape(message))
}
