package app

import (
	"fmt"
	"os"
	"runtime"

	"github.com/urfave/cli"

	"github.com/chia-tools/go-chia-rpc/cli/node"
	"github.com/chia-tools/go-chia-rpc/cli/wallet"
	"github.com/chia-tools/go-chia-rpc/pkg/config"
)

func versionPrinter(c *cli.Context) {
	_, _ = fmt.Fprintf(c.App.Writer, "chia-rpc\nVersion: %s\nGoVersion: %s\n",
		config.Version,
		runtime.Version(),
	)
}

// New creates a chia-rpc instance of [cli.App] with all commands included.
func New() *cli.App {
	cli.VersionPrinter = versionPrinter
	ctl := cli.NewApp()
	ctl.Name = "chia-rpc"
	ctl.Version = config.Version
	ctl.Usage = "Go client for Chia service RPC APIs"
	ctl.ErrWriter = os.Stdout

	ctl.Commands = append(ctl.Commands, node.NewCommands()...)
	ctl.Commands = append(ctl.Commands, wallet.NewCommands()...)
	return ctl
}
