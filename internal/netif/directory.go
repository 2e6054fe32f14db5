package netif

import (
	"context"
	"errors"

	"github.com/rusenback/ifmon/internal/model"
)

// ErrNotFound is returned when an interface is no longer present.
var ErrNotFound = errors.New("interface not found")

// Directory enumerates interfaces and reads their counters.
// Implementations may be slow; callers invoke them inline during a tick.
type Directory interface {
	ListInterfaces(ctx context.Context) ([]model.Interface, error)
	RefreshCounters(ctx context.Context, iface model.Interface) (model.Counters, error)
}

// BridgeNamer resolves bridge device names (docker0, br-xxxx) to network names.
type BridgeNamer interface {
	BridgeNames(ctx context.Context) (map[string]string, error)
}

var _ Directory = (*System)(nil)
