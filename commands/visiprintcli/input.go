package visiprintcli

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/signatory-io/visiprint/core"
	"github.com/signatory-io/visiprint/ui"
	"github.com/spf13/pflag"
)

type inputFlags struct {
	literal bool
	digest  bool
}

func (in *inputFlags) register(f *pflag.FlagSet) {
	f.BoolVarP(&in.literal, "string", "S", false, "Treat arguments as literal strings instead of file names")
	f.BoolVarP(&in.digest, "digest", "d", false, "Treat arguments as hex encoded digests, no hashing is done")
}

// fingerprints reads standard input if no arguments are given.
func (in *inputFlags) fingerprints(fp *core.Fingerprinter, args []string) ([]*core.Fingerprint, error) {
	if in.literal && in.digest {
		return nil, errors.New("--string and --digest are mutually exclusive")
	}
	if len(args) == 0 {
		if in.literal || in.digest {
			return nil, errors.New("no input given")
		}
		args = []string{"-"}
	}

	out := make([]*core.Fingerprint, 0, len(args))
	for _, arg := range args {
		var (
			f   *core.Fingerprint
			err error
		)
		switch {
		case in.digest:
			var digest []byte
			digest, err = hex.DecodeString(strings.TrimPrefix(arg, "0x"))
			if err != nil {
				return nil, fmt.Errorf("%s: %w", arg, err)
			}
			f, err = fp.FromDigest(arg, digest)
		case in.literal:
			f, err = fp.FromReader(arg, strings.NewReader(arg))
		default:
			f, err = fp.FromFile(arg)
		}
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

func footer(f *core.Fingerprint) string {
	if f.Hash == nil {
		return ""
	}
	return f.Hash.String()
}

func fingerprintItem(conf *core.Config, f *core.Fingerprint) *ui.Fingerprint {
	return &ui.Fingerprint{
		Header:     f.Label,
		Footer:     footer(f),
		Grid:       f.Grid,
		Characters: conf.Characters,
	}
}

// checkOverwrite asks before replacing an existing file unless force is set.
func checkOverwrite(ctx context.Context, t ui.UI, path string, force bool) error {
	if force {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	var ok bool
	err := t.Dialog(ctx, &ui.Dialog{
		Items: []ui.Item{
			&ui.Confirmation{Prompt: fmt.Sprintf("File %s already exists. Overwrite?", path), Value: &ok},
		},
	})
	if err != nil {
		return fmt.Errorf("%s exists: %w", path, err)
	}
	if !ok {
		return errors.New("terminated by user")
	}
	return nil
}
