package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/delaneyj/effectparty/reactivity"
	"github.com/dustin/go-humanize"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v3"
)

const (
	maxWidthKey  = "max-width"
	maxHeightKey = "max-height"
	itersKey     = "iters"
	profileKey   = "profile"
	warmupKey    = "warmup"
)

func main() {
	cmd := &cli.Command{
		Name:  "benchmark",
		Usage: "Time write propagation through chains of computed cells",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  maxWidthKey,
				Usage: "Largest number of chains, sizes step by powers of ten",
				Value: 1_000,
			},
			&cli.UintFlag{
				Name:  maxHeightKey,
				Usage: "Largest chain length, sizes step by powers of ten",
				Value: 1_000,
			},
			&cli.UintFlag{
				Name:  itersKey,
				Usage: "Writes timed per size",
				Value: 100,
			},
			&cli.StringFlag{
				Name:  profileKey,
				Usage: "Write a CPU profile to this file",
				Value: "default.pgo",
			},
			&cli.BoolFlag{
				Name:  warmupKey,
				Usage: "Run every size once before measuring",
				Value: true,
			},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	if path := cmd.String(profileKey); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return err
		}
		defer pprof.StopCPUProfile()
	}

	ww := powersOfTen(int(cmd.Uint(maxWidthKey)))
	hh := powersOfTen(int(cmd.Uint(maxHeightKey)))
	iters := int(cmd.Uint(itersKey))

	if cmd.Bool(warmupKey) {
		log.Printf("warming up")
		benchmarkPropagate(ww, hh, iters, false)
	}
	benchmarkPropagate(ww, hh, iters, true)
	return nil
}

func powersOfTen(limit int) []int {
	var sizes []int
	for n := 1; n <= limit; n *= 10 {
		sizes = append(sizes, n)
	}
	return sizes
}

func benchmarkPropagate(ww, hh []int, iters int, shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Effect Party")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max", "effect runs"})

	for _, w := range ww {
		for _, h := range hh {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			e := reactivity.New(reactivity.WithErrorHandler(func(_ *reactivity.Effect, err error) {
				log.Panic(err)
			}))
			src := reactivity.Reactive(e, map[string]any{"value": 1})
			for i := 0; i < w; i++ {
				last := reactivity.Computed(e, func() int {
					return reactivity.GetAs[int](src, "value") + 1
				})
				for j := 1; j < h; j++ {
					prev := last
					last = reactivity.Computed(e, func() int {
						return prev.Value() + 1
					})
				}

				if _, err := e.Effect(func() error {
					last.Value()
					return nil
				}); err != nil {
					log.Panic(err)
				}
			}

			runsBefore := e.Stats().EffectRuns
			for i := 0; i < iters; i++ {
				start := time.Now()
				src.Update("value", func(old any) any { return old.(int) + 1 })
				tach.AddTime(time.Since(start))
			}
			runs := e.Stats().EffectRuns - runsBefore

			calc := tach.Calc()
			tbl.AppendRows([]table.Row{
				{
					fmt.Sprintf("propagate: %d * %d", w, h),
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
					humanize.Comma(int64(runs)),
				},
			})
		}
	}

	if shouldRender {
		tbl.Render()
	}
}
