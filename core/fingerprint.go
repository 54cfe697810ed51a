package core

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/fxamacker/cbor/v2"
	"github.com/signatory-io/visiprint/crypto"
	"github.com/signatory-io/visiprint/logger"
	"github.com/signatory-io/visiprint/randomart"
	"github.com/signatory-io/visiprint/utils"
)

// Fingerprint is the grid derived from one input together with its digest.
type Fingerprint struct {
	Label  string
	Hash   crypto.Hash
	Digest []byte
	Grid   *randomart.Grid
}

func (f *Fingerprint) DigestHex() string { return hex.EncodeToString(f.Digest) }

// Fingerprinter hashes inputs and renders their grids with the configured
// parameters. It holds no mutable state.
type Fingerprinter struct {
	conf   *Config
	logger logger.Logger
}

func NewFingerprinter(conf *Config, logger logger.Logger) *Fingerprinter {
	return &Fingerprinter{
		conf:   conf,
		logger: logger,
	}
}

func (f *Fingerprinter) hash() crypto.Hash {
	if f.conf.Hash.Hash == nil {
		return crypto.SHA256
	}
	return f.conf.Hash.Hash
}

// Grid runs the walk over a digest computed elsewhere.
func (f *Fingerprinter) Grid(digest []byte) (*randomart.Grid, error) {
	g, err := randomart.Generate(digest,
		randomart.WithLevels(f.conf.Levels),
		randomart.WithSize(f.conf.Width, f.conf.Height))
	if err != nil {
		return nil, err
	}
	f.logger.WithFields(map[string]any{
		"width":  g.Width(),
		"height": g.Height(),
		"levels": g.Levels(),
		"max":    g.Max(),
	}).Trace("Grid generated")
	return g, nil
}

// FromDigest builds a fingerprint of raw digest bytes without hashing them.
func (f *Fingerprinter) FromDigest(label string, digest []byte) (*Fingerprint, error) {
	g, err := f.Grid(digest)
	if err != nil {
		return nil, err
	}
	return &Fingerprint{
		Label:  label,
		Digest: digest,
		Grid:   g,
	}, nil
}

// FromReader hashes everything read from r with the configured algorithm.
func (f *Fingerprinter) FromReader(label string, r io.Reader) (*Fingerprint, error) {
	h := f.hash()
	digest, err := crypto.Digest(h, r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", label, err)
	}
	f.logger.With("input", label).Debugf("%s %x", h, digest)

	fp, err := f.FromDigest(label, digest)
	if err != nil {
		return nil, err
	}
	fp.Hash = h
	return fp, nil
}

// FromFile fingerprints the content of a file, "-" means standard input.
func (f *Fingerprinter) FromFile(path string) (*Fingerprint, error) {
	if path == "-" {
		return f.FromReader("stdin", os.Stdin)
	}
	fd, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fd.Close()
	return f.FromReader(path, fd)
}

func (f *Fingerprinter) Text(fp *Fingerprint) (string, error) {
	return randomart.RenderText(fp.Grid, f.conf.Characters)
}

func (f *Fingerprinter) Image(fp *Fingerprint) (*randomart.PixelBuffer, error) {
	var colors []randomart.Color
	if len(f.conf.Colors) != 0 {
		colors = f.conf.Colors
	}
	return randomart.RenderImage(fp.Grid, colors)
}

// WritePNG renders the fingerprint and atomically replaces path with the
// scaled PNG image.
func (f *Fingerprinter) WritePNG(path string, fp *Fingerprint) error {
	buf, err := f.Image(fp)
	if err != nil {
		return err
	}
	err = utils.AtomicWrite(path, 0644, func(w io.Writer) error {
		return buf.EncodePNG(w, f.conf.Scale)
	})
	if err != nil {
		return err
	}
	f.logger.WithFields(map[string]any{"path": path, "scale": f.conf.Scale}).Info("Image written")
	return nil
}

// WriteCBOR stores the grid of the fingerprint in CBOR form.
func (f *Fingerprinter) WriteCBOR(path string, fp *Fingerprint) error {
	buf, err := cbor.Marshal(fp.Grid)
	if err != nil {
		return err
	}
	err = utils.AtomicWrite(path, 0644, func(w io.Writer) error {
		_, err := w.Write(buf)
		return err
	})
	if err != nil {
		return err
	}
	f.logger.With("path", path).Info("Grid written")
	return nil
}

// ReadCBOR loads a grid previously stored with WriteCBOR.
func ReadCBOR(path string) (*randomart.Grid, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var g randomart.Grid
	if err := cbor.Unmarshal(buf, &g); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &g, nil
}
