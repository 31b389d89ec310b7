package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/phanxgames/grove"
)

type replayOptions struct {
	headless      bool
	dt            float64
	secondsPerDay float64
	metricsAddr   string
	width         int
	height        int
}

func newReplayCmd() *cobra.Command {
	var opts replayOptions

	cmd := &cobra.Command{
		Use:   "replay <logfile>",
		Short: "Replay a custom activity log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.headless, "headless", false, "Run the frame loop without a window")
	cmd.Flags().Float64Var(&opts.dt, "dt", 1.0/60, "Frame step in seconds")
	cmd.Flags().Float64Var(&opts.secondsPerDay, "seconds-per-day", 10, "Simulation seconds per day of log time")
	cmd.Flags().StringVar(&opts.metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :9090)")
	cmd.Flags().IntVar(&opts.width, "width", 1280, "Window width")
	cmd.Flags().IntVar(&opts.height, "height", 720, "Window height")
	return cmd
}

func runReplay(ctx context.Context, logPath string, opts replayOptions) error {
	if opts.dt <= 0 {
		return fmt.Errorf("--dt must be > 0, got %v", opts.dt)
	}

	settings, err := loadSettings()
	if err != nil {
		return err
	}

	f, err := os.Open(logPath)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	entries, err := grove.ParseCustomLog(f)
	_ = f.Close()
	if err != nil {
		return err
	}
	logger.Info().Str("log", logPath).Int("entries", len(entries)).Msg("loaded activity log")

	reg := prometheus.NewRegistry()
	simOpts := []grove.Option{
		grove.WithLogger(logger),
		grove.WithMetrics(grove.NewMetrics(reg)),
	}
	if opts.metricsAddr != "" {
		srv := serveMetrics(opts.metricsAddr, reg)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	if !opts.headless {
		fonts, err := grove.NewFontManager(goregular.TTF, 14, 18)
		if err != nil {
			return err
		}
		simOpts = append(simOpts, grove.WithFontManager(fonts))
	}

	sim := grove.NewSimulation(settings, simOpts...)
	defer sim.Close()
	replayer := grove.NewReplayer(sim, entries, opts.secondsPerDay)

	if opts.headless {
		return runHeadless(ctx, sim, replayer, opts.dt)
	}

	ebiten.SetWindowSize(opts.width, opts.height)
	ebiten.SetWindowTitle("grove: " + logPath)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(newGame(sim, replayer))
}

// runHeadless runs frames until the log is exhausted and every file has
// been collected.
func runHeadless(ctx context.Context, sim *grove.Simulation, replayer *grove.Replayer, dt float64) error {
	start := time.Now()
	frames, swept := 0, 0
	for !replayer.Done() || sim.NumFiles() > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
		step(sim, replayer, dt)
		swept += sim.Sweep()
		frames++
	}
	logger.Info().
		Int("frames", frames).
		Float64("simulated_s", float64(frames)*dt).
		Int("collected", swept).
		Dur("wall", time.Since(start)).
		Msg("replay finished")
	return nil
}

// step runs one frame: ingest due activity, then advance every file.
func step(sim *grove.Simulation, replayer *grove.Replayer, dt float64) {
	replayer.Advance(dt)
	sim.Update(dt)
}

func serveMetrics(addr string, reg *prometheus.Registry) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Str("addr", addr).Msg("metrics server failed")
		}
	}()
	logger.Info().Str("addr", addr).Msg("serving metrics")
	return srv
}
