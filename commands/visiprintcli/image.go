package visiprintcli

import (
	"errors"

	"github.com/spf13/cobra"
)

func newImageCommand(ctx *rootContext) *cobra.Command {
	var (
		in     inputFlags
		output string
		force  bool
	)

	cmd := cobra.Command{
		Use:     "image [file]",
		Aliases: []string{"img"},
		Short:   "Write the fingerprint of the input as a PNG image",
		Args:    cobra.MaximumNArgs(1),
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
			return ctx.fp.WritePNG(output, fps[0])
		},
	}

	f := cmd.Flags()
	in.register(f)
	f.StringVarP(&output, "output", "o", "", "Output PNG file")
	f.BoolVarP(&force, "force", "f", false, "Overwrite the output file without asking")
	cmd.MarkFlagFilename("output", "png")

	return &cmd
}
