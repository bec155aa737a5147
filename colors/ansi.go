package colors

import (
	"strings"

	"github.com/gookit/color"
)

// legacyColors maps colour codes to the closest terminal colour.
var legacyColors = map[byte]color.Color{
	'0': color.FgBlack,
	'1': color.FgBlue,
	'2': color.FgGreen,
	'3': color.FgCyan,
	'4': color.FgRed,
	'5': color.FgMagenta,
	'6': color.FgYellow,
	'7': color.FgWhite,
	'8': color.FgDarkGray,
	'9': color.FgLightBlue,
	'a': color.FgLightGreen,
	'b': color.FgLightCyan,
	'c': color.FgLightRed,
	'd': color.FgLightMagenta,
	'e': color.FgLightYellow,
	'f': color.FgLightWhite,
}

var legacyFormats = map[byte]color.Color{
	'k': color.OpBlink,
	'l': color.OpBold,
	'm': color.OpStrikethrough,
	'n': color.OpUnderscore,
	'o': color.OpItalic,
}

// Segment is a run of text sharing one terminal style.
type Segment struct {
	Text string
	Code string // ANSI parameters, e.g. "91;1"; empty means unstyled
}

type style struct {
	fg      string
	formats []string
}

func (s style) code() string {
	parts := make([]string, 0, len(s.formats)+1)
	if s.fg != "" {
		parts = append(parts, s.fg)
	}
	return strings.Join(append(parts, s.formats...), ";")
}

// Segments splits normalized text into styled runs. A colour code resets
// active formats, "§r" resets everything, a "§x" without six hex pairs is dropped.
func Segments(text string) []Segment {
	var (
		segments []Segment
		current  style
		sb       strings.Builder
	)
	flush := func() {
		if sb.Len() == 0 {
			return
		}
		segments = append(segments, Segment{Text: sb.String(), Code: current.code()})
		sb.Reset()
	}

	for i := 0; i < len(text); {
		code, ok := codeAt(text, i)
		if !ok {
			sb.WriteByte(text[i])
			i++
			continue
		}

		step := len(ColorChar) + 1
		switch c := toLower(code); {
		case c == 'x':
			hex, ok := hexAt(text, i+step)
			if ok {
				flush()
				current = style{fg: color.HEX(hex).Code()}
				step *= 7
			}
		case c == 'r':
			flush()
			current = style{}
		case legacyColors[c] != 0:
			flush()
			current = style{fg: legacyColors[c].Code()}
		case legacyFormats[c] != 0:
			flush()
			current.formats = append(append([]string(nil), current.formats...), legacyFormats[c].Code())
		default:
			// not a code, keep the marker as text
			sb.WriteString(ColorChar)
			step = len(ColorChar)
		}
		i += step
	}
	flush()
	return segments
}

// ToANSI renders normalized text for a terminal. When colours are disabled
// or unsupported gookit/color falls back to plain text.
func ToANSI(text string) string {
	var sb strings.Builder
	for _, segment := range Segments(text) {
		if segment.Code == "" {
			sb.WriteString(segment.Text)
			continue
		}
		sb.WriteString(color.RenderCode(segment.Code, segment.Text))
	}
	return sb.String()
}

// hexAt reads the six "§h" pairs following a "§x" code.
func hexAt(text string, i int) (string, bool) {
	hex := make([]byte, 0, 6)
	for n := 0; n < 6; n++ {
		c, ok := codeAt(text, i)
		if !ok || !isHexDigit(c) {
			return "", false
		}
		hex = append(hex, c)
		i += len(ColorChar) + 1
	}
	return string(hex), true
}
