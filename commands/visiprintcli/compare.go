package visiprintcli

import (
	"errors"

	"github.com/signatory-io/visiprint/ui"
	"github.com/spf13/cobra"
)

var errMismatch = errors.New("fingerprints differ")

func newCompareCommand(ctx *rootContext) *cobra.Command {
	var in inputFlags

	cmd := cobra.Command{
		Use:     "compare a b",
		Aliases: []string{"cmp"},
		Short:   "Show two fingerprints side by side, fail if they differ",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fps, err := in.fingerprints(ctx.fp, args)
			if err != nil {
				return err
			}
			a, b := fps[0], fps[1]
			same := a.Grid.Equal(b.Grid)
			result := "identical"
			if !same {
				result = "different"
			}
			err = ctx.ui.Dialog(cmd.Context(), &ui.Dialog{
				Items: []ui.Item{
					&ui.Comparison{Fingerprints: []*ui.Fingerprint{
						fingerprintItem(ctx.conf, a),
						fingerprintItem(ctx.conf, b),
					}},
					&ui.Message{Label: "Result", Message: result},
				},
			})
			if err != nil {
				return err
			}
			if !same {
				return errMismatch
			}
			return nil
		},
	}

	in.register(cmd.Flags())
	return &cmd
}
