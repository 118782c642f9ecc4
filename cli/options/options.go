/*
Package options contains a set of common CLI options and helper functions to use them.
*/
package options

import (
	"context"
	"errors"
	"time"

	"github.com/urfave/cli"

	"github.com/chia-tools/go-chia-rpc/pkg/config"
	"github.com/chia-tools/go-chia-rpc/pkg/rpcclient"
)

// DefaultTimeout is the default timeout used for RPC requests.
const DefaultTimeout = 10 * time.Second

// RPCEndpointFlag is a long flag name for an RPC endpoint. It can be used to
// check for flag presence in the context.
const RPCEndpointFlag = "rpc-endpoint"

// RPC is a set of flags used for RPC connections (endpoint, TLS material and
// timeout).
var RPC = []cli.Flag{
	cli.StringFlag{
		Name:  RPCEndpointFlag + ", r",
		Usage: "RPC service address (overrides the port from config.yaml)",
	},
	cli.StringFlag{
		Name:   "chia-root",
		Usage:  "Chia root directory holding config.yaml and TLS certificates",
		EnvVar: "CHIA_ROOT",
	},
	cli.StringFlag{
		Name:  "cert",
		Usage: "client TLS certificate (overrides the per-service default)",
	},
	cli.StringFlag{
		Name:  "key",
		Usage: "client TLS key (overrides the per-service default)",
	},
	cli.StringFlag{
		Name:  "ca-cert",
		Usage: "CA certificate to verify the service against (skips verification when absent)",
	},
	cli.DurationFlag{
		Name:  "timeout, s",
		Value: DefaultTimeout,
		Usage: "Timeout for the operation",
	},
}

var errNoConfig = errors.New("no Chia installation found, use option '--" + RPCEndpointFlag + "' or '--chia-root'")

// GetTimeoutContext returns a context carrying the timeout from the Context's
// flags (or DefaultTimeout when unset) and its cancellation function.
func GetTimeoutContext(ctx *cli.Context) (context.Context, func()) {
	dur := ctx.Duration("timeout")
	if dur == 0 {
		dur = DefaultTimeout
	}
	return context.WithTimeout(context.Background(), dur)
}

// GetRPCClient returns an RPC client for the given service, instantiated from
// the Context's flags. The endpoint comes from --rpc-endpoint when given,
// otherwise from config.yaml under the Chia root. TLS material defaults to
// the service's own certificate pair under the same root.
func GetRPCClient(gctx context.Context, ctx *cli.Context, svc config.Service) (*rpcclient.Client, cli.ExitCoder) {
	root := ctx.String("chia-root")
	if root == "" {
		root = config.DefaultRoot()
	}

	endpoint := ctx.String(RPCEndpointFlag)
	if endpoint == "" {
		cfg, err := config.LoadRoot(root)
		if err != nil {
			return nil, cli.NewExitError(errNoConfig, 1)
		}
		endpoint = cfg.Endpoint(svc)
	}

	opts := config.ClientOptions(root, svc)
	if cert := ctx.String("cert"); cert != "" {
		opts.Cert = cert
	}
	if key := ctx.String("key"); key != "" {
		opts.Key = key
	}
	if ca := ctx.String("ca-cert"); ca != "" {
		opts.CACert = ca
	}
	opts.RequestTimeout = ctx.Duration("timeout")

	c, err := rpcclient.New(gctx, endpoint, opts)
	if err != nil {
		return nil, cli.NewExitError(err, 1)
	}
	return c, nil
}
