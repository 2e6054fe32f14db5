package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/tree"
	"github.com/dustin/go-humanize"

	"github.com/rusenback/ifmon/internal/model"
	"github.com/rusenback/ifmon/internal/monitor"
)

// detailLines renders the anchored interface, one popup line per element.
// Nil when the popup is closed or its interface has left the row set.
func (m Model) detailLines() []string {
	itf, ok := m.session.Detail()
	if !ok {
		return nil
	}
	return strings.Split(renderDetail(itf, m.hostname), "\n")
}

func renderDetail(itf model.Interface, hostname string) string {
	title := itf.Name
	if itf.Default {
		title += " (default)"
	}
	if hostname != "" {
		title += " on " + hostname
	}

	t := tree.Root(title).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(treeEnumStyle).
		RootStyle(treeRootStyle)

	t.Child(fmt.Sprintf("Index: %d", itf.Index))
	if itf.FriendlyName != "" {
		t.Child("Friendly Name: " + itf.FriendlyName)
	}
	if itf.Description != "" {
		t.Child("Description: " + itf.Description)
	}
	t.Child("Type: " + orDash(itf.Type))
	t.Child("State: " + string(itf.OperState))
	if len(itf.MAC) > 0 {
		t.Child("MAC: " + itf.MAC.String())
	} else {
		t.Child("MAC: -")
	}
	t.Child(fmt.Sprintf("MTU: %d", itf.MTU))

	if itf.TransmitSpeed != nil || itf.ReceiveSpeed != nil {
		speed := tree.Root("Link Speed")
		if itf.TransmitSpeed != nil {
			speed.Child("TX: " + monitor.FormatLinkSpeed(*itf.TransmitSpeed))
		}
		if itf.ReceiveSpeed != nil {
			speed.Child("RX: " + monitor.FormatLinkSpeed(*itf.ReceiveSpeed))
		}
		t.Child(speed)
	}

	flags := fmt.Sprintf("Flags: 0x%08X", uint32(itf.Flags))
	if names := itf.Flags.Names(); len(names) > 0 {
		flags += " (" + strings.Join(names, ", ") + ")"
	}
	t.Child(flags)

	if len(itf.IPv4) > 0 {
		v4 := tree.Root("IPv4")
		for _, p := range itf.IPv4 {
			v4.Child(p.String())
		}
		t.Child(v4)
	}
	if len(itf.IPv6) > 0 {
		v6 := tree.Root("IPv6")
		for i, p := range itf.IPv6 {
			var scope uint32
			if i < len(itf.IPv6ScopeIDs) {
				scope = itf.IPv6ScopeIDs[i]
			}
			v6.Child(fmt.Sprintf("%s (scope_id=%d)", p, scope))
		}
		t.Child(v6)
	}
	if len(itf.DNSServers) > 0 {
		dns := tree.Root("DNS")
		for _, a := range itf.DNSServers {
			dns.Child(a.String())
		}
		t.Child(dns)
	}
	if gw := itf.Gateway; gw != nil {
		g := tree.Root("Gateway")
		if len(gw.MAC) > 0 {
			g.Child("MAC: " + gw.MAC.String())
		}
		for _, a := range gw.IPv4 {
			g.Child("IPv4: " + a.String())
		}
		for _, a := range gw.IPv6 {
			g.Child("IPv6: " + a.String())
		}
		t.Child(g)
	}
	if st := itf.Stats; st != nil {
		t.Child(tree.Root("Statistics (snapshot)").Child(
			fmt.Sprintf("RX bytes: %s", humanize.Comma(int64(st.RxBytes))),
			fmt.Sprintf("TX bytes: %s", humanize.Comma(int64(st.TxBytes))),
			"Sampled: "+st.Timestamp.Format("15:04:05"),
		))
	}

	return t.String()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
