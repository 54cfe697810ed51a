package randomart

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

var ErrInvalidScale = errors.New("randomart: invalid scale")

// PixelBuffer is the unscaled raster of a grid: one pixel per cell.
// It implements image.Image.
type PixelBuffer struct {
	Width  int
	Height int
	Pix    []Color // row-major, same layout as Grid
}

// RenderImage paints the background with colors[0] and every non-zero cell
// with colors[value]. A nil palette selects DefaultColors.
func RenderImage(g *Grid, colors []Color) (*PixelBuffer, error) {
	if colors == nil {
		colors = DefaultColors
	}
	if len(colors) == 0 {
		return nil, &PaletteError{Palette: "color", Level: 0, Size: 0}
	}

	buf := PixelBuffer{
		Width:  g.width,
		Height: g.height,
		Pix:    make([]Color, len(g.cells)),
	}
	bg := colors[0]
	for i := range buf.Pix {
		buf.Pix[i] = bg
	}
	for y := range g.height {
		for x := range g.width {
			idx := g.index(x, y)
			v := g.cells[idx]
			if v == 0 {
				continue
			}
			if v >= len(colors) {
				return nil, &PaletteError{Palette: "color", Level: v, Size: len(colors)}
			}
			buf.Pix[idx] = colors[v]
		}
	}
	return &buf, nil
}

func (p *PixelBuffer) ColorModel() color.Model { return color.RGBAModel }
func (p *PixelBuffer) Bounds() image.Rectangle { return image.Rect(0, 0, p.Width, p.Height) }

func (p *PixelBuffer) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}.In(p.Bounds())) {
		return color.RGBA{}
	}
	return p.Pix[y*p.Width+x]
}

// RGBA converts the buffer into an unscaled *image.RGBA.
func (p *PixelBuffer) RGBA() *image.RGBA {
	img := image.NewRGBA(p.Bounds())
	for i, c := range p.Pix {
		o := i * 4
		img.Pix[o] = c.R
		img.Pix[o+1] = c.G
		img.Pix[o+2] = c.B
		img.Pix[o+3] = 0xff
	}
	return img
}

// Scale returns a surface of int(Width*scale) x int(Height*scale) pixels
// with every cell drawn as a solid block.
func (p *PixelBuffer) Scale(scale float64) (*image.RGBA, error) {
	if !(scale > 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScale, scale)
	}
	w := int(float64(p.Width) * scale)
	h := int(float64(p.Height) * scale)
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("%w: %v yields an empty %dx%d surface", ErrInvalidScale, scale, w, h)
	}
	src := p.RGBA()
	if w == p.Width && h == p.Height {
		return src, nil
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst, nil
}

// EncodePNG writes the scaled surface to w as PNG.
func (p *PixelBuffer) EncodePNG(w io.Writer, scale float64) error {
	img, err := p.Scale(scale)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

var _ image.Image = (*PixelBuffer)(nil)
