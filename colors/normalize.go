// Package colors rewrites user supplied colour expressions into the single
// legacy encoding understood by chat renderers.
//
// Two syntaxes are accepted in configuration and provider values:
//   - legacy codes: '&' followed by one code character ("&c", "&l")
//   - "nicer" hex colours: "&#rrggbb"
//
// Both end up as ColorChar sequences, a hex colour becoming the 14 character
// form "§x§r§r§g§g§b§b".
package colors

import (
	"strings"

	"github.com/samber/lo"
)

const (
	// AltColorChar introduces colour codes in configuration text.
	AltColorChar byte = '&'
	// ColorChar is the in-band marker read by the chat renderer.
	ColorChar = "§"
	// NullDisplay is shown in place of an absent value so misbehaving providers stay visible.
	NullDisplay = "null"

	hexColorLength = 8 // '&' '#' + six digits
	legacyCodes    = "0123456789AaBbCcDdEeFfKkLlMmNnOoRrXx"
)

// Normalize expands "&#rrggbb" colours and translates every '&' code into
// its ColorChar form. It is pure and idempotent.
func Normalize(raw string) string {
	return TranslateAlternateColorCodes(AltColorChar, ExpandHex(raw))
}

// NormalizePtr is Normalize for nullable values: nil renders as "null".
func NormalizePtr(raw *string) string {
	return Normalize(lo.FromPtrOr(raw, NullDisplay))
}

// ExpandHex rewrites every "&#rrggbb" into "&x&r&r&g&g&b&b", scanning left
// to right without overlap. Incomplete or non-hex sequences are copied as is.
func ExpandHex(raw string) string {
	if !strings.Contains(raw, "&#") {
		return raw
	}

	var sb strings.Builder
	sb.Grow(len(raw) + 8)
	for i := 0; i < len(raw); {
		if isHexColorAt(raw, i) {
			sb.WriteByte(AltColorChar)
			sb.WriteByte('x')
			for j := i + 2; j < i+hexColorLength; j++ {
				sb.WriteByte(AltColorChar)
				sb.WriteByte(raw[j])
			}
			i += hexColorLength
			continue
		}
		sb.WriteByte(raw[i])
		i++
	}
	return sb.String()
}

// TranslateAlternateColorCodes replaces alt followed by a code character with
// ColorChar and the lower-cased code. A lone alt stays literal.
func TranslateAlternateColorCodes(alt byte, text string) string {
	if strings.IndexByte(text, alt) < 0 {
		return text
	}

	var sb strings.Builder
	sb.Grow(len(text) + len(text)/2)
	for i := 0; i < len(text); i++ {
		if text[i] == alt && i+1 < len(text) && IsCode(text[i+1]) {
			sb.WriteString(ColorChar)
			sb.WriteByte(toLower(text[i+1]))
			i++
			continue
		}
		sb.WriteByte(text[i])
	}
	return sb.String()
}

// StripColor removes every ColorChar code from text.
func StripColor(text string) string {
	if !strings.Contains(text, ColorChar) {
		return text
	}

	var sb strings.Builder
	sb.Grow(len(text))
	for i := 0; i < len(text); {
		if code, ok := codeAt(text, i); ok && IsCode(code) {
			i += len(ColorChar) + 1
			continue
		}
		sb.WriteByte(text[i])
		i++
	}
	return sb.String()
}

// IsCode reports whether c is a recognised colour or format code character.
func IsCode(c byte) bool {
	return strings.IndexByte(legacyCodes, c) >= 0
}

func isHexColorAt(s string, i int) bool {
	if i+hexColorLength > len(s) || s[i] != AltColorChar || s[i+1] != '#' {
		return false
	}
	for j := i + 2; j < i+hexColorLength; j++ {
		if !isHexDigit(s[j]) {
			return false
		}
	}
	return true
}

// codeAt returns the byte following a ColorChar at position i.
func codeAt(s string, i int) (byte, bool) {
	if !strings.HasPrefix(s[i:], ColorChar) || i+len(ColorChar) >= len(s) {
		return 0, false
	}
	return s[i+len(ColorChar)], true
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func toLower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
