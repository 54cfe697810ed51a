package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/signatory-io/visiprint/randomart"
	"golang.org/x/term"
)

// Terminal writes dialogs to Out, which defaults to standard output.
type Terminal struct {
	Out    io.Writer
	Mode   ColorMode
	Colors []randomart.Color // empty selects randomart.DefaultColors

	mtx sync.Mutex
}

var aLongTimeAgo = time.Unix(1, 0)

func readCtx(ctx context.Context, r *os.File, readFunc func() (string, error)) (string, error) {
	ctxErr := make(chan error)
	done := make(chan struct{})

	go func() {
		select {
		case <-ctx.Done():
			r.SetDeadline(aLongTimeAgo)
			ctxErr <- ctx.Err()
		case <-done:
			ctxErr <- nil
		}
	}()

	line, err := readFunc()
	close(done)
	if e := <-ctxErr; e != nil {
		err = e
	}
	r.SetDeadline(time.Time{})

	if errors.Is(err, io.EOF) {
		err = ErrCancelled
	}
	return line, err
}

func (t *Terminal) out() io.Writer {
	if t.Out == nil {
		return os.Stdout
	}
	return t.Out
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// renderer returns nil if the output must not be colored.
func (t *Terminal) renderer() *lipgloss.Renderer {
	out := t.out()
	switch t.Mode {
	case ColorNever:
		return nil
	case ColorAlways:
		r := lipgloss.NewRenderer(out)
		r.SetColorProfile(termenv.TrueColor)
		return r
	default:
		if !isTerminal(out) {
			return nil
		}
		return lipgloss.NewRenderer(out)
	}
}

func (t *Terminal) Dialog(ctx context.Context, dialog *Dialog) error {
	t.mtx.Lock()
	defer t.mtx.Unlock()

	out := t.out()
	r := t.renderer()
	if dialog.Title != "" {
		fmt.Fprintf(out, "# %s\n", dialog.Title)
	}
	for _, item := range dialog.Items {
		switch item := item.(type) {
		case *Message:
			if item.Label != "" {
				if strings.ContainsRune(item.Message, '\n') {
					// multi line message
					fmt.Fprintf(out, "%s:\n", item.Label)
				} else {
					fmt.Fprintf(out, "%s: ", item.Label)
				}
			}
			fmt.Fprintln(out, item.Message)

		case *Fingerprint:
			if item.Label != "" {
				fmt.Fprintf(out, "%s:\n", item.Label)
			}
			art, err := t.fingerprint(r, item)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, art)

		case *Comparison:
			if item.Label != "" {
				fmt.Fprintf(out, "%s:\n", item.Label)
			}
			blocks := make([]string, 0, len(item.Fingerprints)*2)
			for i, fp := range item.Fingerprints {
				art, err := t.fingerprint(r, fp)
				if err != nil {
					return err
				}
				if i != 0 {
					blocks = append(blocks, "  ")
				}
				blocks = append(blocks, art)
			}
			fmt.Fprintln(out, lipgloss.JoinHorizontal(lipgloss.Top, blocks...))

		case *Confirmation:
			v, err := t.confirm(ctx, item.Prompt)
			if err != nil {
				return err
			}
			*item.Value = v

		default:
			panic(fmt.Sprintf("unexpected ui.Item: %#v", item))
		}
	}
	return nil
}

func (t *Terminal) fingerprint(r *lipgloss.Renderer, fp *Fingerprint) (string, error) {
	plain, err := randomart.RenderText(fp.Grid, fp.Characters)
	if err != nil {
		return "", err
	}
	framed := randomart.Frame(plain, fp.Header, fp.Footer)
	if r == nil {
		return framed, nil
	}

	colored, err := colorize(r, fp.Grid, fp.Characters, t.Colors)
	if err != nil {
		return "", err
	}
	// keep the borders, replace the plain rows
	lines := strings.Split(framed, "\n")
	for i, row := range colored {
		lines[i+1] = "|" + row + "|"
	}
	return strings.Join(lines, "\n"), nil
}

// colorize renders every row of the grid, painting each non-zero cell with
// the color of its level.
func colorize(r *lipgloss.Renderer, g *randomart.Grid, characters string, colors []randomart.Color) ([]string, error) {
	if characters == "" {
		characters = randomart.DefaultCharacters
	}
	if len(colors) == 0 {
		colors = randomart.DefaultColors
	}
	dict := []rune(characters)
	styles := make(map[int]lipgloss.Style)

	rows := make([]string, g.Height())
	var sb strings.Builder
	for y := range g.Height() {
		sb.Reset()
		for x := range g.Width() {
			v := g.At(x, y)
			if v >= len(dict) {
				return nil, &randomart.PaletteError{Palette: "character", Level: v, Size: len(dict)}
			}
			if v == 0 {
				sb.WriteRune(dict[v])
				continue
			}
			if v >= len(colors) {
				return nil, &randomart.PaletteError{Palette: "color", Level: v, Size: len(colors)}
			}
			st, ok := styles[v]
			if !ok {
				st = r.NewStyle().Foreground(lipgloss.Color(colors[v].Hex())).Bold(true)
				styles[v] = st
			}
			sb.WriteString(st.Render(string(dict[v])))
		}
		rows[y] = sb.String()
	}
	return rows, nil
}

func (t *Terminal) confirm(ctx context.Context, prompt string) (bool, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return false, errors.New("standard input is not a terminal")
	}
	state, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		return false, err
	}
	defer term.Restore(int(os.Stdin.Fd()), state)

	stdin := stdinPipe()
	tr := term.NewTerminal(struct {
		io.Reader
		io.Writer
	}{stdin, t.out()}, prompt+" [yes/No]: ")

	v, err := readCtx(ctx, stdin, tr.ReadLine)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(v, "yes"), nil
}

func (t *Terminal) ErrorMessage(ctx context.Context, msg string) error {
	t.mtx.Lock()
	defer t.mtx.Unlock()

	fmt.Fprintf(t.out(), "Error: %s\n", msg)
	return nil
}

var stdinPipe = sync.OnceValue(func() *os.File {
	r, w, err := os.Pipe()
	if err != nil {
		panic(err)
	}
	go io.Copy(w, os.Stdin)
	return r
})

var _ UI = (*Terminal)(nil)
