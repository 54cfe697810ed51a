package visiprintcli

import (
	"os"

	"github.com/signatory-io/visiprint/core"
	"github.com/signatory-io/visiprint/ui"
	"github.com/spf13/cobra"
)

type rootContext struct {
	conf *core.Config
	fp   *core.Fingerprinter
	ui   *ui.Terminal
}

func NewRootCommand() *cobra.Command {
	var (
		conf core.Config
		ctx  rootContext
	)
	conf.Default()
	ctx.conf = &conf

	cmd := cobra.Command{
		Use:           "visiprint [options]",
		Short:         "Visual fingerprints of digests",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// config init writes the file, it must not read it
			loadFromFile := cmd.Name() != "init"
			if err := conf.FromCmdline(loadFromFile, cmd.Flags()); err != nil {
				return err
			}
			log := core.NewLogger(conf.LogLevel, os.Stderr)
			ctx.fp = core.NewFingerprinter(&conf, log)
			ctx.ui = &ui.Terminal{
				Out:    cmd.OutOrStdout(),
				Mode:   conf.ColorMode,
				Colors: conf.Colors,
			}
			return nil
		},
	}

	conf.RegisterFlags(cmd.PersistentFlags(), &cmd)

	cmd.AddCommand(newTextCommand(&ctx))
	cmd.AddCommand(newImageCommand(&ctx))
	cmd.AddCommand(newCompareCommand(&ctx))
	cmd.AddCommand(newExportCommand(&ctx))
	cmd.AddCommand(newViewCommand(&ctx))
	cmd.AddCommand(newHashesCommand())
	cmd.AddCommand(newConfigCommand(&ctx))

	return &cmd
}
