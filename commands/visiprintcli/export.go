package visiprintcli

import (
	"errors"

	"github.com/signatory-io/visiprint/core"
	"github.com/signatory-io/visiprint/ui"
	"github.com/spf13/cobra"
)

func newExportCommand(ctx *rootContext) *cobra.Command {
	var (
		in     inputFlags
		output string
		force  bool
	)

	cmd := cobra.Command{
		Use:   "export [file]",
		Short: "Store the fingerprint grid of the input in CBOR form",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				return errors.New("output file is required")
			}
			fps, err := in.fingerprints(ctx.fp, args)
			if err != nil {
				return err
			}
			if err := checkOverwrite(cmd.Context(), ctx.ui, output, force); err != nil {
				return err
			}
			return ctx.fp.WriteCBOR(output, fps[0])
		},
	}

	f := cmd.Flags()
	in.register(f)
	f.StringVarP(&output, "output", "o", "", "Output file")
	f.BoolVarP(&force, "force", "f", false, "Overwrite the output file without asking")
	cmd.MarkFlagFilename("output")

	return &cmd
}

func newViewCommand(ctx *rootContext) *cobra.Command {
	cmd := cobra.Command{
		Use:   "view file...",
		Short: "Print grids stored with the export command",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items := make([]ui.Item, 0, len(args))
			for _, path := range args {
				g, err := core.ReadCBOR(path)
				if err != nil {
					return err
				}
				items = append(items, &ui.Fingerprint{
					Header:     path,
					Grid:       g,
					Characters: ctx.conf.Characters,
				})
			}
			return ctx.ui.Dialog(cmd.Context(), &ui.Dialog{Items: items})
		},
	}
	return &cmd
}
