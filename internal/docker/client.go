package docker

import (
	"context"
	"fmt"
	"time"

	"github.com/docker/docker/client"
)

// Config sisältää Docker client konfiguraation
type Config struct {
	Host      string
	TLSVerify bool
	CertPath  string
	Timeout   time.Duration
}

func DefaultConfig() Config {
	return Config{
		Host:    client.DefaultDockerHost,
		Timeout: 5 * time.Second,
	}
}

// Client wrappaa Docker API clientin
type Client struct {
	cli     *client.Client
	timeout time.Duration
}

// NewClient connects to the daemon and pings it once.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}

	opts := []client.Opt{
		client.FromEnv,
		client.WithAPIVersionNegotiation(),
	}
	if cfg.Host != "" {
		opts = append(opts, client.WithHost(cfg.Host))
	}
	if cfg.TLSVerify {
		opts = append(opts, client.WithTLSClientConfig(
			cfg.CertPath+"/ca.pem",
			cfg.CertPath+"/cert.pem",
			cfg.CertPath+"/key.pem",
		))
	}

	cli, err := client.NewClientWithOpts(opts...)
	if err != nil {
		return nil, fmt.Errorf("docker client: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	if _, err := cli.Ping(pingCtx); err != nil {
		cli.Close()
		return nil, fmt.Errorf("docker ping %s: %w", cli.DaemonHost(), err)
	}

	return &Client{cli: cli, timeout: cfg.Timeout}, nil
}

// Close sulkee yhteyden
func (c *Client) Close() error {
	if c.cli != nil {
		return c.cli.Close()
	}
	return nil
}
