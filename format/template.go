// Package format holds the chat format template and renders it into a
// line prefix for each message.
package format

import (
	"chat-formatter/colors"
	"strings"
)

// Format placeholders
const (
	NamePlaceholder   = "{name}"
	PrefixPlaceholder = "{prefix}"
	SuffixPlaceholder = "{suffix}"
)

// DefaultFormat is used when the configuration does not override it.
const DefaultFormat = "<" + PrefixPlaceholder + NamePlaceholder + SuffixPlaceholder + "> "

// Attributes are the prefix and suffix of a participant, already normalized.
type Attributes struct {
	Prefix string
	Suffix string
}

// Values feed one render. A nil Attributes means no provider is active and
// the prefix and suffix placeholders are left as they are.
type Values struct {
	Name       string
	Attributes *Attributes
}

// Template is an immutable, normalized chat format.
type Template struct {
	raw  string
	text string
}

// NewTemplate normalizes raw colour codes once; the result never changes.
func NewTemplate(raw string) Template {
	return Template{raw: raw, text: colors.Normalize(raw)}
}

// Default returns the template built from DefaultFormat.
func Default() Template {
	return NewTemplate(DefaultFormat)
}

// Raw is the configuration text the template was built from.
func (t Template) Raw() string {
	return t.raw
}

func (t Template) String() string {
	return t.text
}

// Render substitutes every placeholder in a single pass so inserted values
// are never scanned again. The template itself is left untouched.
func (t Template) Render(v Values) string {
	pairs := []string{NamePlaceholder, v.Name}
	if v.Attributes != nil {
		pairs = append(pairs,
			PrefixPlaceholder, v.Attributes.Prefix,
			SuffixPlaceholder, v.Attributes.Suffix,
		)
	}
	if !strings.Contains(t.text, "{") {
		return t.text
	}
	return strings.NewReplacer(pairs...).Replace(t.text)
}
