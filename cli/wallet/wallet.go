// Package wallet implements CLI commands talking to a wallet service.
package wallet

import (
	"bytes"
	"fmt"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/urfave/cli"

	"github.com/chia-tools/go-chia-rpc/cli/options"
	"github.com/chia-tools/go-chia-rpc/pkg/config"
	"github.com/chia-tools/go-chia-rpc/pkg/rpcclient"
	"github.com/chia-tools/go-chia-rpc/pkg/rpcclient/wallet"
)

var walletIDFlag = cli.UintFlag{
	Name:  "wallet-id, i",
	Value: 1,
	Usage: "wallet ID to operate on",
}

// NewCommands returns the 'wallet' command.
func NewCommands() []cli.Command {
	return []cli.Command{{
		Name:  "wallet",
		Usage: "query and operate a wallet service",
		Subcommands: []cli.Command{
			{
				Name:   "balance",
				Usage:  "print wallet balances",
				Action: walletBalance,
				Flags:  append([]cli.Flag{walletIDFlag}, options.RPC...),
			},
			{
				Name:      "send",
				Usage:     "send mojos to an address",
				ArgsUsage: "<address> <amount>",
				Action:    walletSend,
				Flags: append([]cli.Flag{
					walletIDFlag,
					cli.Uint64Flag{
						Name:  "fee",
						Usage: "fee in mojos to attach to the transaction",
					},
				}, options.RPC...),
			},
			{
				Name:   "transactions",
				Usage:  "list wallet transactions",
				Action: walletTransactions,
				Flags: append([]cli.Flag{
					walletIDFlag,
					cli.IntFlag{
						Name:  "count, n",
						Value: 10,
						Usage: "number of most recent transactions to show",
					},
				}, options.RPC...),
			},
			{
				Name:   "sync-status",
				Usage:  "print the wallet's sync status",
				Action: walletSyncStatus,
				Flags:  options.RPC,
			},
			{
				Name:   "address",
				Usage:  "print the current receive address",
				Action: walletAddress,
				Flags: append([]cli.Flag{
					walletIDFlag,
					cli.BoolFlag{
						Name:  "new",
						Usage: "derive a fresh address instead of the current one",
					},
				}, options.RPC...),
			},
		},
	}}
}

func getWallet(ctx *cli.Context) (*rpcclient.Client, *wallet.Client, func(), cli.ExitCoder) {
	gctx, cancel := options.GetTimeoutContext(ctx)
	c, err := options.GetRPCClient(gctx, ctx, config.Wallet)
	if err != nil {
		cancel()
		return nil, nil, nil, err
	}
	return c, wallet.New(c), cancel, nil
}

func walletBalance(ctx *cli.Context) error {
	_, w, cancel, exitErr := getWallet(ctx)
	if exitErr != nil {
		return exitErr
	}
	defer cancel()

	bal, err := w.GetWalletBalance(uint32(ctx.Uint("wallet-id")))
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	buf := bytes.NewBuffer(nil)
	tw := tabwriter.NewWriter(buf, 0, 4, 4, '\t', 0)
	_, _ = tw.Write([]byte("Confirmed:\t" + bal.ConfirmedWalletBalance.String() + "\n"))
	_, _ = tw.Write([]byte("Unconfirmed:\t" + bal.UnconfirmedWalletBalance.String() + "\n"))
	_, _ = tw.Write([]byte("Spendable:\t" + bal.SpendableBalance.String() + "\n"))
	_, _ = tw.Write([]byte("PendingChange:\t" + strconv.FormatUint(bal.PendingChange, 10) + "\n"))
	_, _ = tw.Write([]byte("UnspentCount:\t" + strconv.Itoa(bal.UnspentCoinCount) + "\n"))
	_ = tw.Flush()
	fmt.Fprint(ctx.App.Writer, buf.String())
	return nil
}

func walletSend(ctx *cli.Context) error {
	args := ctx.Args()
	if len(args) < 2 {
		return cli.NewExitError("address and amount are required", 1)
	}
	amount, err := strconv.ParseUint(args[1], 10, 64)
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("invalid amount: %s", args[1]), 1)
	}

	_, w, cancel, exitErr := getWallet(ctx)
	if exitErr != nil {
		return exitErr
	}
	defer cancel()

	tx, err := w.SendTransaction(uint32(ctx.Uint("wallet-id")), amount, ctx.Uint64("fee"), args[0], wallet.SendOptions{})
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	fmt.Fprintln(ctx.App.Writer, tx.Name)
	return nil
}

func walletTransactions(ctx *cli.Context) error {
	_, w, cancel, exitErr := getWallet(ctx)
	if exitErr != nil {
		return exitErr
	}
	defer cancel()

	txs, err := w.GetTransactions(uint32(ctx.Uint("wallet-id")), wallet.TransactionsQuery{
		End:     ctx.Int("count"),
		Reverse: true,
	})
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	buf := bytes.NewBuffer(nil)
	tw := tabwriter.NewWriter(buf, 0, 4, 4, '\t', 0)
	_, _ = tw.Write([]byte("Name\tAmount\tConfirmed\tCreated\n"))
	for _, tx := range txs {
		created := time.Unix(int64(tx.CreatedAtTime), 0).UTC().Format(time.RFC3339)
		_, _ = tw.Write([]byte(fmt.Sprintf("%s\t%d\t%t\t%s\n",
			tx.Name, tx.Amount, tx.Confirmed, created)))
	}
	_ = tw.Flush()
	fmt.Fprint(ctx.App.Writer, buf.String())
	return nil
}

func walletSyncStatus(ctx *cli.Context) error {
	c, _, cancel, exitErr := getWallet(ctx)
	if exitErr != nil {
		return exitErr
	}
	defer cancel()

	st, err := wallet.NewNode(c).GetSyncStatus()
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	switch {
	case st.Synced:
		fmt.Fprintln(ctx.App.Writer, "synced")
	case st.Syncing:
		fmt.Fprintln(ctx.App.Writer, "syncing")
	default:
		fmt.Fprintln(ctx.App.Writer, "not synced")
	}
	return nil
}

func walletAddress(ctx *cli.Context) error {
	_, w, cancel, exitErr := getWallet(ctx)
	if exitErr != nil {
		return exitErr
	}
	defer cancel()

	addr, err := w.GetNextAddress(uint32(ctx.Uint("wallet-id")), ctx.Bool("new"))
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	fmt.Fprintln(ctx.App.Writer, addr)
	return nil
}
