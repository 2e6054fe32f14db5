package docker

import "context"

// NetworkNamer interface mahdollistaa mockauksen testeissä
type NetworkNamer interface {
	BridgeNames(ctx context.Context) (map[string]string, error)
	Close() error
}

// Varmista että Client toteuttaa interfacen
var _ NetworkNamer = (*Client)(nil)
