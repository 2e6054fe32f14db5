package netif

import (
	"bufio"
	"bytes"
	"net/netip"
	"strings"
)

// parseNameservers extracts the nameserver lines of a resolv.conf file.
// Zone suffixes (fe80::1%eth0) are kept; duplicates and malformed
// addresses are dropped.
func parseNameservers(data []byte) []netip.Addr {
	var servers []netip.Addr
	seen := make(map[netip.Addr]bool)

	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' || line[0] == ';' {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 || fields[0] != "nameserver" {
			continue
		}
		addr, err := netip.ParseAddr(fields[1])
		if err != nil || seen[addr] {
			continue
		}
		seen[addr] = true
		servers = append(servers, addr)
	}
	return servers
}
