package visiprintcli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/signatory-io/visiprint/crypto"
	"github.com/signatory-io/visiprint/utils"
	"github.com/spf13/cobra"
)

func newConfigCommand(ctx *rootContext) *cobra.Command {
	cmd := cobra.Command{
		Use:     "config",
		Aliases: []string{"conf"},
		Short:   "visiprint configuration commands",
	}
	cmd.AddCommand(newConfigInitCommand(ctx))
	cmd.AddCommand(newConfigShowCommand(ctx))
	return &cmd
}

func newConfigInitCommand(ctx *rootContext) *cobra.Command {
	var force bool

	cmd := cobra.Command{
		Use:   "init",
		Short: "Create new configuration file with provided parameters",
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, err := ctx.conf.Marshal()
			if err != nil {
				return err
			}

			confPath, err := cmd.Flags().GetString("config-file")
			if err != nil {
				panic(err)
			}
			confPath = utils.GetPath(confPath, ctx.conf)
			if err := checkOverwrite(cmd.Context(), ctx.ui, confPath, force); err != nil {
				return err
			}

			if err := os.MkdirAll(filepath.Dir(confPath), 0700); err != nil {
				return err
			}
			err = utils.AtomicWrite(confPath, 0600, func(w io.Writer) error {
				_, err := w.Write(buf)
				return err
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration file %s is successfully created\n", confPath)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing configuration file")
	return &cmd
}

func newConfigShowCommand(ctx *rootContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, err := ctx.conf.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(buf)
			return err
		},
	}
}

func newHashesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "hashes",
		Short: "List supported digest algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 4, ' ', 0)
			fmt.Fprintln(w, "Name\tSize")
			for _, h := range crypto.Hashes {
				fmt.Fprintf(w, "%s\t%d\n", h, h.Size())
			}
			return w.Flush()
		},
	}
}
