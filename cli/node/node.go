// Package node implements CLI commands querying a full node service.
package node

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/urfave/cli"

	"github.com/chia-tools/go-chia-rpc/cli/options"
	"github.com/chia-tools/go-chia-rpc/pkg/config"
	"github.com/chia-tools/go-chia-rpc/pkg/rpcclient"
	"github.com/chia-tools/go-chia-rpc/pkg/rpcclient/fullnode"
)

// NewCommands returns the 'node' command and the service-agnostic 'raw'
// command.
func NewCommands() []cli.Command {
	return []cli.Command{{
		Name:  "node",
		Usage: "query a full node service",
		Subcommands: []cli.Command{
			{
				Name:   "state",
				Usage:  "print the blockchain state summary",
				Action: nodeState,
				Flags:  options.RPC,
			},
			{
				Name:      "block",
				Usage:     "print a block record by header hash or height",
				ArgsUsage: "<hash-or-height>",
				Action:    nodeBlock,
				Flags:     options.RPC,
			},
			{
				Name:   "connections",
				Usage:  "list peer connections of the node",
				Action: nodeConnections,
				Flags:  options.RPC,
			},
			{
				Name:   "netspace",
				Usage:  "print the current estimated network space",
				Action: nodeNetspace,
				Flags:  options.RPC,
			},
			{
				Name:   "mempool",
				Usage:  "list transaction ids currently in the mempool",
				Action: nodeMempool,
				Flags:  options.RPC,
			},
			{
				Name:      "push-tx",
				Usage:     "submit a spend bundle read from a JSON file ('-' for stdin)",
				ArgsUsage: "<file>",
				Action:    nodePushTx,
				Flags:     options.RPC,
			},
		},
	}, {
		Name:      "raw",
		Usage:     "invoke any RPC method of a service with a JSON parameter object",
		ArgsUsage: "<service> <method> [params-json]",
		Action:    rawCall,
		Flags:     options.RPC,
	}}
}

func getFullNode(ctx *cli.Context) (*rpcclient.Client, *fullnode.Client, func(), cli.ExitCoder) {
	gctx, cancel := options.GetTimeoutContext(ctx)
	c, err := options.GetRPCClient(gctx, ctx, config.FullNode)
	if err != nil {
		cancel()
		return nil, nil, nil, err
	}
	return c, fullnode.New(c), cancel, nil
}

func nodeState(ctx *cli.Context) error {
	_, fn, cancel, exitErr := getFullNode(ctx)
	if exitErr != nil {
		return exitErr
	}
	defer cancel()

	st, err := fn.GetBlockchainState()
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	buf := bytes.NewBuffer(nil)
	tw := tabwriter.NewWriter(buf, 0, 4, 4, '\t', 0)
	_, _ = tw.Write([]byte(fmt.Sprintf("Synced:\t%t\n", st.Sync.Synced)))
	if st.Peak != nil {
		_, _ = tw.Write([]byte("PeakHeight:\t" + strconv.FormatUint(uint64(st.Peak.Height), 10) + "\n"))
		_, _ = tw.Write([]byte("PeakHash:\t" + st.Peak.HeaderHash + "\n"))
	}
	_, _ = tw.Write([]byte("Difficulty:\t" + strconv.FormatUint(st.Difficulty, 10) + "\n"))
	_, _ = tw.Write([]byte("Space:\t" + st.Space.String() + "\n"))
	_, _ = tw.Write([]byte("MempoolSize:\t" + strconv.Itoa(st.MempoolSize) + "\n"))
	_ = tw.Flush()
	fmt.Fprint(ctx.App.Writer, buf.String())
	return nil
}

func nodeBlock(ctx *cli.Context) error {
	args := ctx.Args()
	if len(args) == 0 {
		return cli.NewExitError("block hash or height is missing", 1)
	}

	_, fn, cancel, exitErr := getFullNode(ctx)
	if exitErr != nil {
		return exitErr
	}
	defer cancel()

	var (
		rec any
		err error
	)
	if height, convErr := strconv.ParseUint(args[0], 10, 32); convErr == nil {
		rec, err = fn.GetBlockRecordByHeight(uint32(height))
	} else {
		rec, err = fn.GetBlockRecord(args[0])
	}
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	return dumpJSON(ctx, rec)
}

func nodeConnections(ctx *cli.Context) error {
	c, _, cancel, exitErr := getFullNode(ctx)
	if exitErr != nil {
		return exitErr
	}
	defer cancel()

	conns, err := c.GetConnections()
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	buf := bytes.NewBuffer(nil)
	tw := tabwriter.NewWriter(buf, 0, 4, 4, '\t', 0)
	_, _ = tw.Write([]byte("NodeID\tHost\tPort\tType\n"))
	for _, conn := range conns {
		_, _ = tw.Write([]byte(fmt.Sprintf("%s\t%s\t%d\t%d\n",
			conn.NodeID, conn.PeerHost, conn.PeerPort, conn.Type)))
	}
	_ = tw.Flush()
	fmt.Fprint(ctx.App.Writer, buf.String())
	return nil
}

func nodeNetspace(ctx *cli.Context) error {
	_, fn, cancel, exitErr := getFullNode(ctx)
	if exitErr != nil {
		return exitErr
	}
	defer cancel()

	st, err := fn.GetBlockchainState()
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	fmt.Fprintf(ctx.App.Writer, "%s bytes\n", st.Space.String())
	return nil
}

func nodeMempool(ctx *cli.Context) error {
	_, fn, cancel, exitErr := getFullNode(ctx)
	if exitErr != nil {
		return exitErr
	}
	defer cancel()

	ids, err := fn.GetAllMempoolTxIDs()
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	for _, id := range ids {
		fmt.Fprintln(ctx.App.Writer, id)
	}
	return nil
}

func nodePushTx(ctx *cli.Context) error {
	args := ctx.Args()
	if len(args) == 0 {
		return cli.NewExitError("spend bundle file is missing", 1)
	}

	var (
		data []byte
		err  error
	)
	if args[0] == "-" {
		data, err = readStdin()
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	if !json.Valid(data) {
		return cli.NewExitError("spend bundle is not valid JSON", 1)
	}

	_, fn, cancel, exitErr := getFullNode(ctx)
	if exitErr != nil {
		return exitErr
	}
	defer cancel()

	status, err := fn.PushTx(json.RawMessage(data))
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	fmt.Fprintln(ctx.App.Writer, status)
	return nil
}

func rawCall(ctx *cli.Context) error {
	args := ctx.Args()
	if len(args) < 2 {
		return cli.NewExitError("service and method are required", 1)
	}
	svc := config.Service(args[0])
	if config.DefaultPort(svc) == 0 {
		return cli.NewExitError(fmt.Sprintf("unknown service: %s", args[0]), 1)
	}

	params := map[string]any{}
	if len(args) > 2 {
		if err := json.Unmarshal([]byte(args[2]), &params); err != nil {
			return cli.NewExitError(fmt.Sprintf("invalid params: %s", err), 1)
		}
	}

	gctx, cancel := options.GetTimeoutContext(ctx)
	defer cancel()
	c, exitErr := options.GetRPCClient(gctx, ctx, svc)
	if exitErr != nil {
		return exitErr
	}

	resp, err := c.CallRaw(args[1], params)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	return dumpJSON(ctx, resp)
}

func dumpJSON(ctx *cli.Context, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	fmt.Fprintln(ctx.App.Writer, string(out))
	return nil
}

func readStdin() ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	_, err := buf.ReadFrom(os.Stdin)
	return buf.Bytes(), err
}
