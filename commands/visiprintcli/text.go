package visiprintcli

import (
	"fmt"

	"github.com/signatory-io/visiprint/ui"
	"github.com/spf13/cobra"
)

func newTextCommand(ctx *rootContext) *cobra.Command {
	var (
		in         inputFlags
		noFrame    bool
		showDigest bool
	)

	cmd := cobra.Command{
		Use:     "text [file...]",
		Aliases: []string{"t"},
		Short:   "Print the text fingerprint of each input",
		RunE: func(cmd *cobra.Command, args []string) error {
			fps, err := in.fingerprints(ctx.fp, args)
			if err != nil {
				return err
			}
			for _, f := range fps {
				if noFrame {
					text, err := ctx.fp.Text(f)
					if err != nil {
						return err
					}
					fmt.Fprintln(cmd.OutOrStdout(), text)
					continue
				}
				var items []ui.Item
				if showDigest {
					items = append(items, &ui.Message{Label: footer(f), Message: f.DigestHex()})
				}
				items = append(items, fingerprintItem(ctx.conf, f))
				if err := ctx.ui.Dialog(cmd.Context(), &ui.Dialog{Items: items}); err != nil {
					return err
				}
			}
			return nil
		},
	}

	f := cmd.Flags()
	in.register(f)
	f.BoolVar(&noFrame, "no-frame", false, "Print the bare grid without a border")
	f.BoolVarP(&showDigest, "show-digest", "D", false, "Print the hex digest above the fingerprint")

	return &cmd
}
