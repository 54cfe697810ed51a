package randomart

import "strings"

// RenderText maps every cell to characters[value], indexed by rune. Rows are
// separated by a single newline and the result has no trailing newline.
// An empty characters string selects DefaultCharacters.
func RenderText(g *Grid, characters string) (string, error) {
	if characters == "" {
		characters = DefaultCharacters
	}
	dict := []rune(characters)

	var out strings.Builder
	out.Grow((g.width + 1) * g.height)
	for y := range g.height {
		if y != 0 {
			out.WriteByte('\n')
		}
		for x := range g.width {
			v := g.cells[g.index(x, y)]
			if v >= len(dict) {
				return "", &PaletteError{Palette: "character", Level: v, Size: len(dict)}
			}
			out.WriteRune(dict[v])
		}
	}
	return out.String(), nil
}
