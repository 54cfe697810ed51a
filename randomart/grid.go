// Package randomart derives a visual fingerprint from arbitrary bytes using
// the randomart walk popularised by OpenSSH, and renders it as pixels or text.
package randomart

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

const (
	DefaultLevels = 8
	DefaultWidth  = 32
	DefaultHeight = 32
)

var (
	ErrInvalidDimensions = errors.New("randomart: invalid grid dimensions")
	ErrInvalidGrid       = errors.New("randomart: invalid grid data")
)

// Grid holds the visit counts of a walk. Cells are stored row-major:
// the cell at (col, row) lives at index row*width + col.
// A Grid is never modified after Generate returns it.
type Grid struct {
	cells  []int
	width  int
	height int
	levels int
	source []byte
}

type params struct {
	levels int
	width  int
	height int
}

type Option func(p *params)

// WithLevels sets the number of levels. Cells saturate at levels-2.
func WithLevels(levels int) Option {
	return func(p *params) { p.levels = levels }
}

func WithSize(width, height int) Option {
	return func(p *params) {
		p.width = width
		p.height = height
	}
}

func validate(levels, width, height int) error {
	if width < 1 || height < 1 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if width > math.MaxInt/height {
		return fmt.Errorf("%w: %dx%d cells overflow", ErrInvalidDimensions, width, height)
	}
	if levels < 3 {
		return fmt.Errorf("%w: %d levels, at least 3 required", ErrInvalidDimensions, levels)
	}
	return nil
}

// Generate walks the grid using data as the source of moves. Each byte
// contributes four moves, least significant bit pair first: bit 0 selects
// the horizontal direction and bit 1 the vertical one. The cursor starts in
// the centre and is clamped to the grid after every move.
func Generate(data []byte, opts ...Option) (*Grid, error) {
	p := params{
		levels: DefaultLevels,
		width:  DefaultWidth,
		height: DefaultHeight,
	}
	for _, o := range opts {
		o(&p)
	}
	if err := validate(p.levels, p.width, p.height); err != nil {
		return nil, err
	}

	g := Grid{
		cells:  make([]int, p.width*p.height),
		width:  p.width,
		height: p.height,
		levels: p.levels,
		source: slices.Clone(data),
	}
	limit := p.levels - 2

	x := p.width / 2
	y := p.height / 2
	for _, input := range data {
		for range 4 {
			if input&0x1 != 0 {
				x += 1
			} else {
				x -= 1
			}
			if input&0x2 != 0 {
				y += 1
			} else {
				y -= 1
			}
			x = min(max(x, 0), p.width-1)
			y = min(max(y, 0), p.height-1)

			idx := g.index(x, y)
			if g.cells[idx] < limit {
				g.cells[idx]++
			}
			input = input >> 2
		}
	}
	return &g, nil
}

func (g *Grid) index(col, row int) int { return row*g.width + col }

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }
func (g *Grid) Levels() int { return g.levels }

// At returns the value of the cell at (col, row). It panics if the
// coordinates are outside the grid.
func (g *Grid) At(col, row int) int {
	if col < 0 || col >= g.width || row < 0 || row >= g.height {
		panic(fmt.Sprintf("randomart: cell (%d, %d) is outside of %dx%d grid", col, row, g.width, g.height))
	}
	return g.cells[g.index(col, row)]
}

// Cells returns a row-major copy of the cell buffer.
func (g *Grid) Cells() []int { return slices.Clone(g.cells) }

// Source returns a copy of the bytes the grid was generated from.
func (g *Grid) Source() []byte { return slices.Clone(g.source) }

// Max returns the largest cell value.
func (g *Grid) Max() int {
	if len(g.cells) == 0 {
		return 0
	}
	return slices.Max(g.cells)
}

// Equal reports whether both grids have the same shape, level count and cells.
// The source bytes are not compared.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	return g.width == other.width &&
		g.height == other.height &&
		g.levels == other.levels &&
		slices.Equal(g.cells, other.cells)
}
