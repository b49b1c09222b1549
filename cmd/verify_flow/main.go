// Package main provides a headless walk-through tool for the celebration flow.
//
// Usage:
//
//	go run ./cmd/verify_flow [flags]
//
// Flags:
//
//	--config <path>   Celebration YAML file (default: data/celebration.yaml)
//	--blow-all        Use the "blow all" button instead of blowing candles one by one
//	--tick <seconds>  Simulated frame length (default: 1/60)
//	--verbose         Enable session logging
//
// Purpose:
//   - Drive a Session through start, candles, cuts and the letter without a window
//   - Print the view after every step together with the burst log
//   - Check completion delays and cut lockouts against the configured timings
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/decker502/birthday/internal/logger"
	"github.com/decker502/birthday/pkg/celebration"
	"github.com/decker502/birthday/pkg/config"
)

type options struct {
	configPath string
	blowAll    bool
	tick       float64
	verbose    bool
}

func main() {
	opts := &options{}

	cmd := &cobra.Command{
		Use:          "verify_flow",
		Short:        "Run a scripted celebration walk-through without a window",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.OutOrStdout(), opts)
		},
	}
	cmd.Flags().StringVar(&opts.configPath, "config", config.DefaultConfigPath, "celebration YAML file")
	cmd.Flags().BoolVar(&opts.blowAll, "blow-all", false, "blow every candle at once")
	cmd.Flags().Float64Var(&opts.tick, "tick", 1.0/60.0, "simulated frame length in seconds")
	cmd.Flags().BoolVar(&opts.verbose, "verbose", false, "enable session logging")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// walker 记录时间与爆发日志
type walker struct {
	out     io.Writer
	session *celebration.Session
	tick    float64
	clock   float64
	bursts  []string
}

func run(out io.Writer, opts *options) error {
	if opts.tick <= 0 {
		return fmt.Errorf("tick must be positive, got %v", opts.tick)
	}
	if err := logger.Configure(opts.verbose, "debug"); err != nil {
		return err
	}
	defer logger.Sync()

	cfg, err := config.LoadCelebrationConfig(opts.configPath)
	if err != nil {
		return err
	}
	sessionOpts, err := cfg.SessionOptions()
	if err != nil {
		return err
	}

	w := &walker{out: out, tick: opts.tick}
	w.session = celebration.NewSession(sessionOpts, celebration.EffectsFunc(func(b celebration.Burst) {
		w.bursts = append(w.bursts, fmt.Sprintf("t=%.2fs count=%d spread=%.0f origin=(%.2f, %.2f)",
			w.clock, b.Count, b.Spread, b.OriginX, b.OriginY))
	}))
	defer w.session.Close()

	fmt.Fprintf(out, "session %s\n", w.session.ID())
	w.report("initial")

	w.step("start", w.session.Start())

	// 锁定的目标应被忽略
	w.step("navigate cake (locked)", w.session.Navigate(celebration.SceneCakeCutting))

	if opts.blowAll {
		w.step("blow all", w.session.BlowAll())
	} else {
		for i := 0; i < celebration.CandleCount; i++ {
			w.step(fmt.Sprintf("blow candle %d", i), w.session.BlowCandle(i))
			w.advance(sessionOpts.Candles.BlowDuration)
		}
	}
	w.advance(sessionOpts.Candles.CompletionDelay)
	w.report("candles settled")

	w.step("navigate cake", w.session.Navigate(celebration.SceneCakeCutting))
	for i := 0; i < celebration.MaxSlices; i++ {
		w.step(fmt.Sprintf("cut %d", i+1), w.session.Cut())
		w.step("cut during lockout", w.session.Cut())
		w.advance(sessionOpts.Cut.CutDuration)
	}
	w.report("cake settled")

	w.step("navigate letter", w.session.Navigate(celebration.SceneLetterReveal))
	w.step("open letter", w.session.OpenLetter())
	w.advance(2)
	w.report("letter")

	w.step("navigate candles", w.session.Navigate(celebration.SceneCandleBlowing))

	fmt.Fprintf(out, "\nbursts (%d):\n", len(w.bursts))
	for _, b := range w.bursts {
		fmt.Fprintf(out, "  %s\n", b)
	}
	return nil
}

// advance 以固定步长推进至少 seconds 秒，多跑一帧以越过边界
func (w *walker) advance(seconds float64) {
	frames := int(seconds/w.tick) + 1
	for i := 0; i < frames; i++ {
		w.session.Update(w.tick)
		w.clock += w.tick
	}
}

func (w *walker) step(name string, changed bool) {
	w.session.Update(w.tick)
	w.clock += w.tick
	w.report(fmt.Sprintf("%s -> changed=%v", name, changed))
}

func (w *walker) report(label string) {
	v := w.session.View()

	var candles strings.Builder
	for _, lit := range v.Candles {
		if lit {
			candles.WriteByte('i')
		} else {
			candles.WriteByte('.')
		}
	}

	var nav []string
	for _, item := range v.Nav {
		state := "locked"
		if item.Unlocked {
			state = "open"
		}
		if item.Active {
			state = "active"
		}
		nav = append(nav, fmt.Sprintf("%s:%s", item.Scene, state))
	}

	fmt.Fprintf(w.out, "[%6.2fs] %-28s scene=%-13s nav=%v [%s]\n", w.clock, label, v.Scene, v.NavVisible, strings.Join(nav, " "))
	fmt.Fprintf(w.out, "          candles=%s blowing=%v blown=%v knife=%.0f slices=%d cutting=%v cut=%v letter=%v\n",
		candles.String(), v.Blowing, v.CandlesBlown, v.KnifeX, v.Slices, v.Cutting, v.CakeCut, v.LetterOpen)
}
