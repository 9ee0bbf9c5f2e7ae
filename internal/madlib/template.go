// internal/madlib/template.go
//
// Story templates for mad libs.
// A template is plain text with blanks written as {part of speech}, e.g.
// "fit into his {noun}". Parsing splits it into literal text and blanks;
// Fill puts the player's words back in order.

package madlib

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMalformedTemplate = errors.New("malformed template")
	ErrWordCount         = errors.New("wrong number of words")
)

// Template is a parsed story. Literal text and blanks alternate:
// text[0] blank[0] text[1] ... blank[n-1] text[n].
type Template struct {
	text   []string
	blanks []string
}

// ParseTemplate splits s into text and blanks. A template must contain at
// least one blank and every "{" needs a closing "}".
func ParseTemplate(s string) (*Template, error) {
	t := &Template{}
	rest := strings.TrimSpace(s)
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			if strings.IndexByte(rest, '}') >= 0 {
				return nil, fmt.Errorf("stray '}': %w", ErrMalformedTemplate)
			}
			t.text = append(t.text, rest)
			break
		}
		if strings.IndexByte(rest[:open], '}') >= 0 {
			return nil, fmt.Errorf("stray '}': %w", ErrMalformedTemplate)
		}
		end := strings.IndexByte(rest[open:], '}')
		if end < 0 {
			return nil, fmt.Errorf("unclosed '{': %w", ErrMalformedTemplate)
		}
		blank := strings.TrimSpace(rest[open+1 : open+end])
		if blank == "" || strings.ContainsAny(blank, "{") {
			return nil, fmt.Errorf("blank %q: %w", rest[open:open+end+1], ErrMalformedTemplate)
		}
		t.text = append(t.text, rest[:open])
		t.blanks = append(t.blanks, blank)
		rest = rest[open+end+1:]
	}
	if len(t.blanks) == 0 {
		return nil, fmt.Errorf("no blanks: %w", ErrMalformedTemplate)
	}
	return t, nil
}

// Blanks returns the parts of speech to ask for, in story order.
func (t *Template) Blanks() []string {
	return append([]string(nil), t.blanks...)
}

// Fill substitutes words into the blanks.
func (t *Template) Fill(words []string) (string, error) {
	if len(words) != len(t.blanks) {
		return "", fmt.Errorf("got %d, need %d: %w", len(words), len(t.blanks), ErrWordCount)
	}
	var b strings.Builder
	for i, w := range words {
		b.WriteString(t.text[i])
		b.WriteString(w)
	}
	b.WriteString(t.text[len(words)])
	return b.String(), nil
}

// Article picks "a" or "an" for a part of speech by its first letter.
func Article(partOfSpeech string) string {
	s := strings.TrimSpace(partOfSpeech)
	if s == "" {
		return "a"
	}
	switch strings.ToLower(s[:1]) {
	case "a", "e", "i", "o", "u":
		return "an"
	}
	return "a"
}
