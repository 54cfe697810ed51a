package randomart

import (
	"strings"
	"unicode/utf8"
)

// Frame draws an OpenSSH style box around rendered text art. Non-empty
// header and footer labels are centred in the top and bottom borders and
// truncated to the art width.
func Frame(art, header, footer string) string {
	lines := strings.Split(art, "\n")
	width := 0
	for _, l := range lines {
		width = max(width, utf8.RuneCountInString(l))
	}

	var out strings.Builder
	writeBorder(&out, header, width)
	out.WriteByte('\n')
	for _, l := range lines {
		out.WriteByte('|')
		out.WriteString(l)
		for range width - utf8.RuneCountInString(l) {
			out.WriteByte(' ')
		}
		out.WriteByte('|')
		out.WriteByte('\n')
	}
	writeBorder(&out, footer, width)
	return out.String()
}

func writeBorder(out *strings.Builder, label string, width int) {
	if label == "" {
		out.WriteByte('+')
		for range width {
			out.WriteByte('-')
		}
		out.WriteByte('+')
		return
	}

	// the brackets take the place of the corners
	r := []rune(label)
	if len(r) > width {
		r = r[:width]
	}
	padL := (width - len(r)) / 2
	padR := width - len(r) - padL
	if padL != 0 {
		out.WriteByte('+')
		for range padL - 1 {
			out.WriteByte('-')
		}
	}
	out.WriteByte('[')
	out.WriteString(string(r))
	out.WriteByte(']')
	if padR != 0 {
		for range padR - 1 {
			out.WriteByte('-')
		}
		out.WriteByte('+')
	}
}
