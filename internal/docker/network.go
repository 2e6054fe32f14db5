package docker

import (
	"context"
	"fmt"

	"github.com/docker/docker/api/types"
)

const bridgeNameOption = "com.docker.network.bridge.name"

// BridgeNames maps host bridge devices to the Docker networks behind them,
// e.g. docker0 -> bridge, br-3f2a9c1d0e4b -> backend.
func (c *Client) BridgeNames(ctx context.Context) (map[string]string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	networks, err := c.cli.NetworkList(ctx, types.NetworkListOptions{})
	if err != nil {
		return nil, fmt.Errorf("list docker networks: %w", err)
	}

	names := make(map[string]string, len(networks))
	for _, n := range networks {
		if dev := bridgeDevice(n); dev != "" {
			names[dev] = n.Name
		}
	}
	return names, nil
}

// bridgeDevice returns the host device of a bridge network, or "" for
// other drivers. Without an explicit name Docker uses br-<first 12 id chars>.
func bridgeDevice(n types.NetworkResource) string {
	if n.Driver != "bridge" {
		return ""
	}
	if name := n.Options[bridgeNameOption]; name != "" {
		return name
	}
	if len(n.ID) < 12 {
		return ""
	}
	return "br-" + n.ID[:12]
}
