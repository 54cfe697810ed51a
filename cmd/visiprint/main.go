package main

import (
	"context"
	"os"

	"github.com/signatory-io/visiprint/commands/visiprintcli"
	"github.com/signatory-io/visiprint/ui"
)

func main() {
	cmd := visiprintcli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		(&ui.Terminal{Out: os.Stderr}).ErrorMessage(context.Background(), err.Error())
		os.Exit(1)
	}
}
