package domain

import (
	"fmt"
	"time"
)

// GeneratedAuthor is the author label stamped on every phrase produced by the
// generation flow. Owners may overwrite it afterwards.
const GeneratedAuthor = "Generado por IA"

// Phrase is a short inspirational text owned by exactly one account.
type Phrase struct {
	ID        int64
	Text      string
	Author    string
	OwnerID   int64
	CreatedAt time.Time
}

// InspirationPrompt builds the instruction sent to the text generator.
func InspirationPrompt(topic string, lang Language) string {
	return fmt.Sprintf("Genera una frase inspiradora corta sobre el tema %q.\n"+
		"Responde ÚNICAMENTE en idioma %s.\n"+
		"No incluyas autor.", topic, lang.Name)
}
