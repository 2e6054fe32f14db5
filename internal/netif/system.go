package netif

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/netip"
	"os"
	"path/filepath"
	"strings"

	"github.com/prometheus/procfs"
	"github.com/prometheus/procfs/sysfs"
	psnet "github.com/shirou/gopsutil/v3/net"

	"github.com/rusenback/ifmon/internal/model"
)

// Fetcher holds the data sources used by System. Every field can be
// replaced in tests with SetFetcher.
type Fetcher struct {
	Interfaces func(ctx context.Context) (psnet.InterfaceStatList, error)
	IOCounters func(ctx context.Context, pernic bool) ([]psnet.IOCountersStat, error)
	NetClass   func() (sysfs.NetClass, error)
	NetRoute   func() ([]procfs.NetRouteLine, error)
	ARPEntries func() ([]procfs.ARPEntry, error)
	ResolvConf func() ([]byte, error)
	Wireless   func(name string) bool
}

// Options configures a System directory.
type Options struct {
	ProcPath   string
	SysPath    string
	ResolvConf string
	Namer      BridgeNamer
	Logger     *slog.Logger
}

// System reads interfaces from the running host.
type System struct {
	fetcher Fetcher
	namer   BridgeNamer
	logger  *slog.Logger
}

// New creates a directory backed by gopsutil, /proc and /sys.
func New(opts Options) *System {
	if opts.ProcPath == "" {
		opts.ProcPath = procfs.DefaultMountPoint
	}
	if opts.SysPath == "" {
		opts.SysPath = sysfs.DefaultMountPoint
	}
	if opts.ResolvConf == "" {
		opts.ResolvConf = "/etc/resolv.conf"
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &System{
		fetcher: Fetcher{
			Interfaces: psnet.InterfacesWithContext,
			IOCounters: psnet.IOCountersWithContext,
			NetClass: func() (sysfs.NetClass, error) {
				fs, err := sysfs.NewFS(opts.SysPath)
				if err != nil {
					return nil, err
				}
				return fs.NetClass()
			},
			NetRoute: func() ([]procfs.NetRouteLine, error) {
				fs, err := procfs.NewFS(opts.ProcPath)
				if err != nil {
					return nil, err
				}
				return fs.NetRoute()
			},
			ARPEntries: func() ([]procfs.ARPEntry, error) {
				fs, err := procfs.NewFS(opts.ProcPath)
				if err != nil {
					return nil, err
				}
				return fs.GatherARPEntries()
			},
			ResolvConf: func() ([]byte, error) {
				return os.ReadFile(opts.ResolvConf)
			},
			Wireless: func(name string) bool {
				_, err := os.Stat(filepath.Join(opts.SysPath, "class", "net", name, "wireless"))
				return err == nil
			},
		},
		namer:  opts.Namer,
		logger: logger,
	}
}

// SetFetcher sets a custom fetcher for testing.
func (s *System) SetFetcher(f Fetcher) {
	s.fetcher = f
}

// ListInterfaces returns every interface known to the host. Only the
// gopsutil enumeration is required; sysfs, routing, DNS and bridge lookups
// enrich the result when available.
func (s *System) ListInterfaces(ctx context.Context) ([]model.Interface, error) {
	stats, err := s.fetcher.Interfaces(ctx)
	if err != nil {
		return nil, fmt.Errorf("list interfaces: %w", err)
	}

	class := s.netClass()
	defaultIface, gw := s.defaultRoute()
	dns := s.dnsServers()
	bridges := s.bridgeNames(ctx)

	ifaces := make([]model.Interface, 0, len(stats))
	for _, st := range stats {
		itf := fromStat(st)

		if c, ok := class[st.Name]; ok {
			applyNetClass(&itf, c, s.wireless(st.Name))
		} else {
			itf.OperState = operStateFromFlags(itf.Flags)
			itf.Type = typeFromFlags(itf.Flags)
		}

		if itf.FriendlyName == "" {
			if name, ok := bridges[st.Name]; ok {
				itf.FriendlyName = name
				itf.Description = "Docker network " + name
			}
		}

		if st.Name == defaultIface && defaultIface != "" {
			itf.Default = true
			itf.Gateway = gw
			itf.DNSServers = dns
		}

		ifaces = append(ifaces, itf)
	}
	return ifaces, nil
}

// RefreshCounters reads the cumulative byte counters of one interface.
func (s *System) RefreshCounters(ctx context.Context, iface model.Interface) (model.Counters, error) {
	counters, err := s.fetcher.IOCounters(ctx, true)
	if err != nil {
		return model.Counters{}, fmt.Errorf("read counters for %s: %w", iface.Name, err)
	}
	for _, c := range counters {
		if c.Name == iface.Name {
			return model.Counters{RxBytes: c.BytesRecv, TxBytes: c.BytesSent}, nil
		}
	}
	return model.Counters{}, fmt.Errorf("read counters for %s: %w", iface.Name, ErrNotFound)
}

func fromStat(st psnet.InterfaceStat) model.Interface {
	itf := model.Interface{
		Name:      st.Name,
		Index:     st.Index,
		MTU:       st.MTU,
		OperState: model.OperUnknown,
	}
	if mac, err := net.ParseMAC(st.HardwareAddr); err == nil {
		itf.MAC = mac
	}
	for _, f := range st.Flags {
		itf.Flags |= model.ParseFlag(f)
	}
	for _, a := range st.Addrs {
		prefix, err := netip.ParsePrefix(a.Addr)
		if err != nil {
			continue
		}
		if prefix.Addr().Is4() || prefix.Addr().Is4In6() {
			itf.IPv4 = append(itf.IPv4, prefix)
			continue
		}
		itf.IPv6 = append(itf.IPv6, prefix)
		itf.IPv6ScopeIDs = append(itf.IPv6ScopeIDs, scopeID(prefix.Addr(), st.Index))
	}
	return itf
}

// scopeID is the interface index for link-local IPv6 addresses and 0 otherwise.
func scopeID(addr netip.Addr, index int) uint32 {
	if addr.IsLinkLocalUnicast() && index > 0 {
		return uint32(index)
	}
	return 0
}

func applyNetClass(itf *model.Interface, c sysfs.NetClassIface, wireless bool) {
	if c.OperState != "" {
		itf.OperState = model.OperState(strings.ToLower(c.OperState))
	}
	if c.IfAlias != "" {
		itf.FriendlyName = c.IfAlias
	}
	if c.Type != nil {
		itf.Type = typeName(*c.Type, wireless)
	}
	if c.Speed != nil && *c.Speed > 0 {
		bps := uint64(*c.Speed) * 1_000_000
		tx, rx := bps, bps
		itf.TransmitSpeed = &tx
		itf.ReceiveSpeed = &rx
	}
}

func (s *System) netClass() sysfs.NetClass {
	if s.fetcher.NetClass == nil {
		return nil
	}
	class, err := s.fetcher.NetClass()
	if err != nil {
		s.logger.Debug("sysfs net class unavailable", "error", err)
		return nil
	}
	return class
}

func (s *System) wireless(name string) bool {
	return s.fetcher.Wireless != nil && s.fetcher.Wireless(name)
}

// defaultRoute finds the interface carrying the IPv4 default route.
func (s *System) defaultRoute() (string, *model.Gateway) {
	if s.fetcher.NetRoute == nil {
		return "", nil
	}
	routes, err := s.fetcher.NetRoute()
	if err != nil {
		s.logger.Debug("routing table unavailable", "error", err)
		return "", nil
	}

	var (
		iface string
		gwIP  netip.Addr
		best  uint32
		found bool
	)
	for _, r := range routes {
		if r.Destination != 0 || r.Mask != 0 {
			continue
		}
		if found && r.Metric >= best {
			continue
		}
		iface, best, found = r.Iface, r.Metric, true
		gwIP = routeGateway(r.Gateway)
	}
	if !found {
		return "", nil
	}

	gw := &model.Gateway{}
	if gwIP.IsValid() && !gwIP.IsUnspecified() {
		gw.IPv4 = []netip.Addr{gwIP}
		gw.MAC = s.neighborMAC(gwIP, iface)
	}
	return iface, gw
}

// routeGateway decodes the little-endian gateway field of /proc/net/route.
func routeGateway(g uint32) netip.Addr {
	return netip.AddrFrom4([4]byte{byte(g), byte(g >> 8), byte(g >> 16), byte(g >> 24)})
}

func (s *System) neighborMAC(ip netip.Addr, iface string) net.HardwareAddr {
	if s.fetcher.ARPEntries == nil {
		return nil
	}
	entries, err := s.fetcher.ARPEntries()
	if err != nil {
		s.logger.Debug("arp table unavailable", "error", err)
		return nil
	}
	for _, e := range entries {
		addr, ok := netip.AddrFromSlice(e.IPAddr)
		if !ok || addr.Unmap() != ip {
			continue
		}
		if e.Device != "" && e.Device != iface {
			continue
		}
		return e.HWAddr
	}
	return nil
}

func (s *System) dnsServers() []netip.Addr {
	if s.fetcher.ResolvConf == nil {
		return nil
	}
	data, err := s.fetcher.ResolvConf()
	if err != nil {
		s.logger.Debug("resolv.conf unavailable", "error", err)
		return nil
	}
	return parseNameservers(data)
}

func (s *System) bridgeNames(ctx context.Context) map[string]string {
	if s.namer == nil {
		return nil
	}
	names, err := s.namer.BridgeNames(ctx)
	if err != nil {
		s.logger.Debug("docker bridge names unavailable", "error", err)
		return nil
	}
	return names
}
