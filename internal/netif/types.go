package netif

import "github.com/rusenback/ifmon/internal/model"

// ARPHRD_* values from <linux/if_arp.h>.
const (
	arphrdEther      = 1
	arphrdIEEE1394   = 24
	arphrdInfiniband = 32
	arphrdPPP        = 512
	arphrdTunnel     = 768
	arphrdTunnel6    = 769
	arphrdLoopback   = 772
	arphrdSit        = 776
	arphrdIPGRE      = 778
	arphrdIEEE80211  = 801
	arphrdNone       = 65534
)

func typeName(arphrd int64, wireless bool) string {
	switch arphrd {
	case arphrdEther:
		if wireless {
			return "Wireless80211"
		}
		return "Ethernet"
	case arphrdIEEE80211:
		return "Wireless80211"
	case arphrdLoopback:
		return "Loopback"
	case arphrdPPP:
		return "Ppp"
	case arphrdTunnel, arphrdTunnel6, arphrdSit, arphrdIPGRE, arphrdNone:
		return "Tunnel"
	case arphrdIEEE1394:
		return "Ieee1394"
	case arphrdInfiniband:
		return "Infiniband"
	default:
		return "Unknown"
	}
}

// typeFromFlags is the fallback when sysfs is not mounted.
func typeFromFlags(f model.Flags) string {
	switch {
	case f&model.FlagLoopback != 0:
		return "Loopback"
	case f&model.FlagPointToPoint != 0:
		return "Tunnel"
	default:
		return "Unknown"
	}
}

func operStateFromFlags(f model.Flags) model.OperState {
	switch {
	case f&model.FlagRunning != 0:
		return model.OperUp
	case f&model.FlagUp != 0:
		return model.OperUnknown
	default:
		return model.OperDown
	}
}
