package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/signatory-io/visiprint/randomart"
)

type Item interface {
	DialogItem()
}

type Message struct {
	Label   string
	Message string
}

func (*Message) DialogItem() {}

// Fingerprint displays a grid as framed text art.
type Fingerprint struct {
	Label      string
	Header     string
	Footer     string
	Grid       *randomart.Grid
	Characters string
}

func (*Fingerprint) DialogItem() {}

// Comparison displays several fingerprints next to each other.
type Comparison struct {
	Label        string
	Fingerprints []*Fingerprint
}

func (*Comparison) DialogItem() {}

type Confirmation struct {
	Prompt string
	Value  *bool
}

func (*Confirmation) DialogItem() {}

type Dialog struct {
	Title string
	Items []Item
}

var ErrCancelled = errors.New("cancelled")

type UI interface {
	Dialog(ctx context.Context, dialog *Dialog) error
	ErrorMessage(ctx context.Context, msg string) error
}

type ColorMode int

const (
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

var colorModeNames = [...]string{
	ColorAuto:   "auto",
	ColorAlways: "always",
	ColorNever:  "never",
}

func (m ColorMode) MarshalText() ([]byte, error) {
	if m < 0 || int(m) >= len(colorModeNames) {
		return nil, fmt.Errorf("unexpected ui.ColorMode: %d", m)
	}
	return []byte(colorModeNames[m]), nil
}

func (m ColorMode) String() string {
	text, err := m.MarshalText()
	if err != nil {
		return "invalid"
	}
	return string(text)
}

func (m *ColorMode) UnmarshalText(text []byte) error {
	for i, name := range colorModeNames {
		if strings.EqualFold(string(text), name) {
			*m = ColorMode(i)
			return nil
		}
	}
	return fmt.Errorf("unknown color mode: %s", string(text))
}
