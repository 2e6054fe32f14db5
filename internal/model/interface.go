package model

import (
	"net"
	"net/netip"
)

// Identity locates one interface across refreshes.
// Name is the stable key; FriendlyName is only used for display.
type Identity struct {
	Name         string
	FriendlyName string
	Index        int
}

// DisplayName prefers the friendly name when the platform provides one.
func (id Identity) DisplayName() string {
	if id.FriendlyName != "" {
		return id.FriendlyName
	}
	return id.Name
}

// OperState is the operational state reported by the kernel.
type OperState string

const (
	OperUnknown        OperState = "unknown"
	OperUp             OperState = "up"
	OperDown           OperState = "down"
	OperDormant        OperState = "dormant"
	OperLowerLayerDown OperState = "lowerlayerdown"
	OperNotPresent     OperState = "notpresent"
	OperTesting        OperState = "testing"
)

// Interface edustaa yhtä verkkoliitäntää
type Interface struct {
	Name         string
	FriendlyName string
	Description  string
	Index        int
	OperState    OperState
	Type         string
	MAC          net.HardwareAddr
	MTU          int
	IPv4         []netip.Prefix
	IPv6         []netip.Prefix
	IPv6ScopeIDs []uint32
	DNSServers   []netip.Addr
	Gateway      *Gateway
	// Link speeds in bits per second, nil when the driver does not report them
	TransmitSpeed *uint64
	ReceiveSpeed  *uint64
	Flags         Flags
	Default       bool

	// Latest counter snapshot, nil until the first successful refresh
	Stats *CounterSnapshot
}

// ID returns the identity of the interface.
func (i Interface) ID() Identity {
	return Identity{Name: i.Name, FriendlyName: i.FriendlyName, Index: i.Index}
}

// Gateway edustaa oletusyhdyskäytävää
type Gateway struct {
	MAC  net.HardwareAddr
	IPv4 []netip.Addr
	IPv6 []netip.Addr
}

// Flags mirrors the bit layout of net.Flags.
type Flags uint32

const (
	FlagUp Flags = 1 << iota
	FlagBroadcast
	FlagLoopback
	FlagPointToPoint
	FlagMulticast
	FlagRunning
)

var flagNames = []struct {
	flag Flags
	name string
}{
	{FlagUp, "up"},
	{FlagBroadcast, "broadcast"},
	{FlagLoopback, "loopback"},
	{FlagPointToPoint, "pointtopoint"},
	{FlagMulticast, "multicast"},
	{FlagRunning, "running"},
}

// ParseFlag maps a flag name to its bit, returning 0 for unknown names.
func ParseFlag(name string) Flags {
	for _, f := range flagNames {
		if f.name == name {
			return f.flag
		}
	}
	return 0
}

// Names lists the set flags in bit order.
func (f Flags) Names() []string {
	var names []string
	for _, fn := range flagNames {
		if f&fn.flag != 0 {
			names = append(names, fn.name)
		}
	}
	return names
}
