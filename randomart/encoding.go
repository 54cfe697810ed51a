package randomart

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

type gridWire struct {
	Levels int    `cbor:"0,keyasint"`
	Width  int    `cbor:"1,keyasint"`
	Height int    `cbor:"2,keyasint"`
	Cells  []int  `cbor:"3,keyasint"`
	Source []byte `cbor:"4,keyasint,omitempty"`
}

func (g *Grid) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(&gridWire{
		Levels: g.levels,
		Width:  g.width,
		Height: g.height,
		Cells:  g.cells,
		Source: g.source,
	})
}

// UnmarshalCBOR decodes a grid and checks that it could have been produced
// by Generate with the encoded parameters.
func (g *Grid) UnmarshalCBOR(data []byte) error {
	var w gridWire
	if err := cbor.Unmarshal(data, &w); err != nil {
		return err
	}
	if err := validate(w.Levels, w.Width, w.Height); err != nil {
		return err
	}
	if len(w.Cells) != w.Width*w.Height {
		return fmt.Errorf("%w: %d cells for %dx%d grid", ErrInvalidGrid, len(w.Cells), w.Width, w.Height)
	}
	for i, v := range w.Cells {
		if v < 0 || v > w.Levels-2 {
			return fmt.Errorf("%w: cell %d value %d out of range [0, %d]", ErrInvalidGrid, i, v, w.Levels-2)
		}
	}
	*g = Grid{
		cells:  w.Cells,
		width:  w.Width,
		height: w.Height,
		levels: w.Levels,
		source: w.Source,
	}
	return nil
}

var (
	_ cbor.Marshaler   = (*Grid)(nil)
	_ cbor.Unmarshaler = (*Grid)(nil)
)
