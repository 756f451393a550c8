package main

import (
	"log/slog"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/docnav/cmd/docnav/commands"
	ferrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
	"git.home.luguber.info/inful/docnav/internal/version"
)

func main() {
	cli := &commands.CLI{}
	parser := kong.Parse(cli,
		kong.Name("docnav"),
		kong.Description("Generate sidebar and top navigation menus from a markdown documentation tree."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
	)

	adapter := ferrors.NewCLIErrorAdapter(cli.Verbose, slog.Default())
	if err := parser.Run(&commands.Global{Logger: slog.Default()}, cli); err != nil {
		adapter.HandleError(err)
	}
}
