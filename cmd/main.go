package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/yeeaiclub/overlaycounter"
	"github.com/yeeaiclub/overlaycounter/counters"
	"github.com/yeeaiclub/overlaycounter/settings"
	"github.com/yeeaiclub/overlaycounter/terminal"
)

func main() {
	envFile := flag.String("env", ".env", "settings file with OVERLAY_* flags")
	rows := flag.Int("rows", 6, "terminal rows reserved for the overlay")
	frameRate := flag.Int("fps", 60, "ticks per second")
	verbose := flag.Bool("v", false, "debug logging to stderr")
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := settings.Load(*envFile)
	if err != nil {
		logger.Error("load settings", slog.Any("error", err))
		os.Exit(1)
	}

	term := terminal.NewProcessTerminal()
	term.ClearScreen()
	term.HideCursor()
	defer term.ShowCursor()

	widget := terminal.NewWidget(term, *rows)
	meter := counters.NewFrameMeter(time.Now)
	reg := overlaycounter.NewRegistry()
	counters.Register(reg, cfg, meter, time.Now)

	order := overlaycounter.DefaultOrder
	if names := cfg.Order(); len(names) > 0 {
		order = overlaycounter.OrderBy(names...)
	}

	m := overlaycounter.New(widget, reg,
		overlaycounter.WithLogger(logger),
		overlaycounter.WithOrder(order),
		// One cell per line is a whole row; no compaction in a terminal.
		overlaycounter.WithLayout(overlaycounter.LayoutPolicy{LeftMargin: 1}),
	)
	m.RegisterResizeHandler(func(height int) {
		term.SetTitle("overlay: " + strconv.Itoa(height) + " rows")
	})
	if len(m.EnabledCounters()) == 0 {
		logger.Warn("no overlay counters enabled", slog.String("hint", settings.Key(counters.FPS)+"=true"))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ticker := time.NewTicker(time.Second / time.Duration(max(1, *frameRate)))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			term.ClearScreen()
			return
		case <-ticker.C:
			meter.Frame()
			widget.Tick()
		}
	}
}
