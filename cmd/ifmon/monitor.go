package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rusenback/ifmon/internal/config"
	"github.com/rusenback/ifmon/internal/docker"
	"github.com/rusenback/ifmon/internal/monitor"
	"github.com/rusenback/ifmon/internal/netif"
	"github.com/rusenback/ifmon/internal/support/logging"
	"github.com/rusenback/ifmon/internal/tui"
)

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Launch the live interface dashboard",
	Long:  "Launch an interactive terminal UI showing per-interface totals and rates, refreshed every interval.",
	Args:  cobra.NoArgs,
	RunE:  runMonitor,
}

func init() {
	rootCmd.AddCommand(monitorCmd)
}

func runMonitor(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile, cmd.Flags())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logOut, err := logging.OpenFile(cfg.Log.File)
	if err != nil {
		return err
	}
	defer logOut.Close()

	level, _ := cfg.Log.SlogLevel()
	logger := logging.New(logging.Options{Level: level, Format: cfg.Log.Format, Output: logOut})

	opts, err := cfg.Options()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dirOpts := netif.Options{Logger: logger}
	if cfg.Docker.Enabled {
		client, err := docker.NewClient(ctx, docker.Config{Host: cfg.Docker.Host, Timeout: cfg.Docker.Timeout})
		if err != nil {
			logger.Warn("docker bridge naming disabled", "error", err)
		} else {
			defer client.Close()
			dirOpts.Namer = client
		}
	}
	dir := netif.New(dirOpts)

	hostname, err := os.Hostname()
	if err != nil {
		logger.Debug("hostname unavailable", "error", err)
	}

	logger.Info("monitor starting",
		slog.String("iface", opts.Iface),
		slog.String("sort", opts.Sort.String()),
		slog.Duration("interval", opts.Interval),
		slog.String("unit", opts.Unit.String()),
	)

	session := monitor.NewSession(ctx, dir, opts, logger, time.Now())
	model := tui.NewModel(ctx, session, hostname)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrInterrupted) || (errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil) {
			logger.Info("monitor stopped", "reason", err)
			return nil
		}
		return fmt.Errorf("run tui: %w", err)
	}

	logger.Info("monitor stopped")
	return nil
}
