package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Build info - injected via ldflags
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:           "ifmon",
	Short:         "Live network interface monitor",
	Long:          `ifmon samples per-interface byte counters and shows totals and throughput in a terminal dashboard.`,
	Version:       fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, BuildTime),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runMonitor,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file (default: ifmon.yaml in ., $HOME/.config/ifmon, /etc/ifmon)")
	pf.StringP("iface", "i", "", "monitor a single interface")
	pf.StringP("sort", "s", "total", "initial sort key: total, total-rx, total-tx, rx, tx")
	pf.IntP("interval", "d", 1, "refresh interval in seconds")
	pf.String("unit", "bytes", "display unit: bytes or bits")
	pf.String("log-file", "", "write logs to this file (default: discard)")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	pf.Bool("docker", false, "name Docker bridge interfaces after their networks")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
