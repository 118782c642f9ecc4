// Package config locates Chia installation files and service endpoints. It
// reads the installation's config.yaml for ports and hostnames and falls back
// to the well-known defaults when no installation is present.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/chia-tools/go-chia-rpc/pkg/rpcclient"
)

// Version is the version of the tool, set at build time.
var Version string

// Service identifies one of the Chia daemon's child services.
type Service string

// Services with an RPC interface.
const (
	FullNode  Service = "full_node"
	Wallet    Service = "wallet"
	Farmer    Service = "farmer"
	Harvester Service = "harvester"
	Crawler   Service = "crawler"
	DataLayer Service = "data_layer"
	Daemon    Service = "daemon"
)

// Default RPC ports per service, as shipped in Chia's initial config.
var defaultPorts = map[Service]uint16{
	FullNode:  8555,
	Wallet:    9256,
	Farmer:    8559,
	Harvester: 8560,
	Crawler:   8561,
	DataLayer: 8562,
	Daemon:    55400,
}

// DefaultPort returns the well-known RPC port of a service, 0 for an unknown
// service.
func DefaultPort(s Service) uint16 {
	return defaultPorts[s]
}

// DefaultRoot returns the Chia root directory, $CHIA_ROOT when set, otherwise
// ~/.chia/mainnet.
func DefaultRoot() string {
	if root := os.Getenv("CHIA_ROOT"); root != "" {
		return root
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".chia/mainnet"
	}
	return filepath.Join(home, ".chia", "mainnet")
}

// Config mirrors the parts of Chia's config.yaml this package needs: the
// daemon address and each service's RPC port.
type Config struct {
	SelfHostname string `yaml:"self_hostname"`
	DaemonPort   uint16 `yaml:"daemon_port"`

	FullNode  serviceConfig `yaml:"full_node"`
	Wallet    serviceConfig `yaml:"wallet"`
	Farmer    serviceConfig `yaml:"farmer"`
	Harvester serviceConfig `yaml:"harvester"`
	Seeder    crawlerConfig `yaml:"seeder"`
	DataLayer serviceConfig `yaml:"data_layer"`
}

type serviceConfig struct {
	RPCPort uint16 `yaml:"rpc_port"`
}

type crawlerConfig struct {
	CrawlerConfig serviceConfig `yaml:"crawler"`
}

// Load reads config.yaml under the default Chia root.
func Load() (*Config, error) {
	return LoadRoot(DefaultRoot())
}

// LoadRoot reads config.yaml under the given Chia root directory.
func LoadRoot(root string) (*Config, error) {
	path := filepath.Join(root, "config", "config.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "unable to read config")
	}
	cfg := new(Config)
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "unable to parse config")
	}
	if cfg.SelfHostname == "" {
		cfg.SelfHostname = "localhost"
	}
	return cfg, nil
}

// Port returns the configured RPC port of a service, falling back to the
// well-known default when the config does not set one.
func (c *Config) Port(s Service) uint16 {
	var port uint16
	switch s {
	case FullNode:
		port = c.FullNode.RPCPort
	case Wallet:
		port = c.Wallet.RPCPort
	case Farmer:
		port = c.Farmer.RPCPort
	case Harvester:
		port = c.Harvester.RPCPort
	case Crawler:
		port = c.Seeder.CrawlerConfig.RPCPort
	case DataLayer:
		port = c.DataLayer.RPCPort
	case Daemon:
		port = c.DaemonPort
	}
	if port == 0 {
		port = DefaultPort(s)
	}
	return port
}

// Endpoint returns the RPC endpoint URL of a service. The daemon speaks
// websocket, every other service plain HTTPS.
func (c *Config) Endpoint(s Service) string {
	scheme := "https"
	if s == Daemon {
		scheme = "wss"
	}
	return fmt.Sprintf("%s://%s:%d", scheme, c.SelfHostname, c.Port(s))
}

// DefaultEndpoint returns the endpoint a service listens on in a stock
// localhost installation.
func DefaultEndpoint(s Service) string {
	scheme := "https"
	if s == Daemon {
		scheme = "wss"
	}
	return fmt.Sprintf("%s://localhost:%d", scheme, DefaultPort(s))
}

// SSLCertPaths returns the client certificate and key paths of a service
// under the given Chia root. The daemon uses its own certificate pair.
func SSLCertPaths(root string, s Service) (cert string, key string) {
	name := string(s)
	dir := filepath.Join(root, "config", "ssl", name)
	return filepath.Join(dir, "private_"+name+".crt"),
		filepath.Join(dir, "private_"+name+".key")
}

// CACertPath returns the path of the installation's private CA certificate.
func CACertPath(root string) string {
	return filepath.Join(root, "config", "ssl", "ca", "private_ca.crt")
}

// ClientOptions assembles rpcclient options with the TLS material of the
// given service under root. Certificate files that do not exist are left out
// so that endpoints without mutual TLS (tests, proxies) keep working.
func ClientOptions(root string, s Service) rpcclient.Options {
	var opts rpcclient.Options
	cert, key := SSLCertPaths(root, s)
	if fileExists(cert) && fileExists(key) {
		opts.Cert = cert
		opts.Key = key
	}
	if ca := CACertPath(root); fileExists(ca) {
		opts.CACert = ca
	}
	return opts
}

func fileExists(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && !fi.IsDir()
}
