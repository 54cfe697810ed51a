package randomart

import (
	"bytes"
	"image/png"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestRenderTextShape(t *testing.T) {
	sizes := []struct{ w, h int }{{32, 32}, {17, 9}, {1, 1}, {8, 3}}
	for _, s := range sizes {
		g, err := Generate([]byte("some digest bytes"), WithSize(s.w, s.h))
		require.NoError(t, err)
		out, err := RenderText(g, DefaultCharacters)
		require.NoError(t, err)
		require.Equal(t, s.h-1, strings.Count(out, "\n"))
		for _, line := range strings.Split(out, "\n") {
			require.Equal(t, s.w, utf8.RuneCountInString(line))
		}
	}
}

func TestRenderTextKnownVector(t *testing.T) {
	g, err := Generate([]byte{0x00}, WithSize(8, 8))
	require.NoError(t, err)
	out, err := RenderText(g, "")
	require.NoError(t, err)
	// start (4,4); moves to (3,3) (2,2) (1,1) (0,0)
	require.Equal(t, strings.Join([]string{
		".       ",
		" .      ",
		"  .     ",
		"   .    ",
		"        ",
		"        ",
		"        ",
		"        ",
	}, "\n"), out)
}

func TestRenderTextRunes(t *testing.T) {
	g, err := Generate(bytes.Repeat([]byte{0x00}, 8), WithLevels(4), WithSize(8, 8))
	require.NoError(t, err)
	out, err := RenderText(g, "·░▒")
	require.NoError(t, err)
	lines := strings.Split(out, "\n")
	require.Equal(t, "▒·······", lines[0])
	require.Equal(t, "·░······", lines[1])
}

func TestRenderTextPaletteTooSmall(t *testing.T) {
	g, err := Generate(bytes.Repeat([]byte{0x00}, 40))
	require.NoError(t, err)
	require.Equal(t, 6, g.Max())

	out, err := RenderText(g, " .o+=*")
	require.Empty(t, out)
	require.ErrorIs(t, err, ErrPaletteTooSmall)
	var pe *PaletteError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, "character", pe.Palette)
	require.Equal(t, 6, pe.Level)
	require.Equal(t, 6, pe.Size)

	// enough entries for the values actually present
	_, err = RenderText(g, " .o+=*B")
	require.NoError(t, err)
}

func TestRenderImage(t *testing.T) {
	g, err := Generate([]byte{0x00}, WithSize(8, 8))
	require.NoError(t, err)
	buf, err := RenderImage(g, nil)
	require.NoError(t, err)
	require.Equal(t, 8, buf.Width)
	require.Equal(t, 8, buf.Height)
	for y := range 8 {
		for x := range 8 {
			c := buf.Pix[y*8+x]
			if x == y && x < 4 {
				require.Equal(t, DefaultColors[1], c)
			} else {
				require.Equal(t, DefaultColors[0], c)
			}
			require.Equal(t, c, buf.At(x, y))
		}
	}
}

func TestRenderImageZeroCellsKeepBackground(t *testing.T) {
	g, err := Generate(nil, WithSize(4, 4))
	require.NoError(t, err)
	palette := []Color{{1, 2, 3}}
	buf, err := RenderImage(g, palette)
	require.NoError(t, err)
	for _, c := range buf.Pix {
		require.Equal(t, palette[0], c)
	}
}

func TestRenderImagePaletteTooSmall(t *testing.T) {
	g, err := Generate(bytes.Repeat([]byte{0xff}, 10), WithSize(8, 8))
	require.NoError(t, err)
	palette := []Color{{0, 0, 0}, {255, 0, 0}}
	buf, err := RenderImage(g, palette)
	require.Nil(t, buf)
	var pe *PaletteError
	require.ErrorAs(t, err, &pe)
	require.ErrorIs(t, err, ErrPaletteTooSmall)
	require.Equal(t, "color", pe.Palette)
	require.Equal(t, 2, pe.Size)

	_, err = RenderImage(g, []Color{})
	require.ErrorIs(t, err, ErrPaletteTooSmall)
}

func TestRenderDoesNotMutate(t *testing.T) {
	g, err := Generate([]byte("immutable"))
	require.NoError(t, err)
	cells := g.Cells()
	palette := append([]Color(nil), DefaultColors...)

	_, err = RenderImage(g, palette)
	require.NoError(t, err)
	_, err = RenderText(g, DefaultCharacters)
	require.NoError(t, err)

	require.Equal(t, cells, g.Cells())
	require.Equal(t, DefaultColors, palette)
}

func TestScale(t *testing.T) {
	g, err := Generate([]byte{0x00}, WithSize(8, 8))
	require.NoError(t, err)
	buf, err := RenderImage(g, nil)
	require.NoError(t, err)

	img, err := buf.Scale(4)
	require.NoError(t, err)
	require.Equal(t, 32, img.Bounds().Dx())
	require.Equal(t, 32, img.Bounds().Dy())
	// cell (3,3) covers pixels [12,16)
	c := DefaultColors[1]
	for _, p := range [][2]int{{12, 12}, {15, 15}, {12, 15}} {
		r, gr, b, _ := img.At(p[0], p[1]).RGBA()
		require.Equal(t, [3]uint32{uint32(c.R) * 0x101, uint32(c.G) * 0x101, uint32(c.B) * 0x101}, [3]uint32{r, gr, b})
	}
	r, gr, b, _ := img.At(16, 16).RGBA()
	require.Equal(t, [3]uint32{0, 0, 0}, [3]uint32{r, gr, b})

	img, err = buf.Scale(1)
	require.NoError(t, err)
	require.Equal(t, buf.Bounds(), img.Bounds())

	img, err = buf.Scale(2.5)
	require.NoError(t, err)
	require.Equal(t, 20, img.Bounds().Dx())

	for _, s := range []float64{0, -1, 0.01} {
		_, err = buf.Scale(s)
		require.ErrorIs(t, err, ErrInvalidScale)
	}
}

func TestEncodePNG(t *testing.T) {
	g, err := Generate([]byte("png"), WithSize(16, 8))
	require.NoError(t, err)
	buf, err := RenderImage(g, nil)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, buf.EncodePNG(&out, 3))
	img, err := png.Decode(&out)
	require.NoError(t, err)
	require.Equal(t, 48, img.Bounds().Dx())
	require.Equal(t, 24, img.Bounds().Dy())
}

func TestColorString(t *testing.T) {
	c := Color{128, 69, 69}
	require.Equal(t, "rgb(128,69,69)", c.String())
	require.Equal(t, "#804545", c.Hex())
	_, _, _, a := c.RGBA()
	require.Equal(t, uint32(0xffff), a)
}

func TestColorUnmarshalText(t *testing.T) {
	cases := map[string]Color{
		"#804545":         {128, 69, 69},
		"#fff":            {255, 255, 255},
		"rgb(32,128,128)": {32, 128, 128},
		" rgb(1, 2, 3) ":  {1, 2, 3},
	}
	for in, expected := range cases {
		var c Color
		require.NoError(t, c.UnmarshalText([]byte(in)), in)
		require.Equal(t, expected, c)
	}
	for _, in := range []string{"red", "#12345", "rgb(1,2)", "rgb(256,0,0)", "#gggggg"} {
		var c Color
		require.Error(t, c.UnmarshalText([]byte(in)), in)
	}
}
