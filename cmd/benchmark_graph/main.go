package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"
)

const (
	configKey  = "config"
	repeatsKey = "repeats"
	onlyKey    = "only"
)

func main() {
	cmd := &cli.Command{
		Name:  "benchmark_graph",
		Usage: "Run layered dependency graph benchmarks against the reactivity engine",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  configKey,
				Usage: "YAML file with a list of graph configs, replaces the built in set",
			},
			&cli.UintFlag{
				Name:  repeatsKey,
				Usage: "Timed runs per config, the best one is reported",
				Value: 5,
			},
			&cli.StringSliceFlag{
				Name:  onlyKey,
				Usage: "Only run configs with these names",
			},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	log.Print("Starting graph benchmark, please wait...")
	defer log.Print("Finished graph benchmark")

	cfgs := defaultConfigs
	if path := cmd.String(configKey); path != "" {
		loaded, err := loadConfigs(path)
		if err != nil {
			return err
		}
		cfgs = loaded
	}
	cfgs = filterConfigs(cfgs, cmd.StringSlice(onlyKey))
	if len(cfgs) == 0 {
		return fmt.Errorf("no configs to run")
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{
		"size", "nSources", "read%", "static%",
		"nTimes", "test", "time", "evals", "updateRate", "title",
	})

	testRepeats := int(cmd.Uint(repeatsKey))
	for _, cfg := range cfgs {
		if err := ctx.Err(); err != nil {
			return err
		}
		log.Printf("Running '%s' config", cfg.Name)
		g := makeGraph(cfg)

		// warm up
		g.run(cfg.Iterations, cfg.ReadFraction)

		best := struct {
			runResult
			duration time.Duration
		}{duration: time.Hour}
		for i := 0; i < testRepeats; i++ {
			log.Printf("Running '%s' config, iteration %d/%d %d%%", cfg.Name, i+1, testRepeats, (i+1)*100/testRepeats)
			start := time.Now()
			res := g.run(cfg.Iterations, cfg.ReadFraction)
			if d := time.Since(start); d < best.duration {
				best.duration = d
				best.runResult = res
			}
		}

		updateRate := float64(best.evals) / (float64(best.duration) / float64(time.Millisecond))
		table.Append([]string{
			fmt.Sprintf("%dx%d", cfg.Width, cfg.TotalLayers),
			fmt.Sprint(cfg.NSources),
			fmt.Sprint(cfg.ReadFraction),
			fmt.Sprint(cfg.StaticFraction),
			humanize.Comma(cfg.Iterations),
			cfg.Name,
			fmt.Sprint(best.duration),
			humanize.Comma(int64(best.evals)),
			humanize.Comma(int64(updateRate)),
			cfg.title(),
		})
	}
	table.Render()
	return nil
}

func filterConfigs(cfgs []graphConfig, names []string) []graphConfig {
	if len(names) == 0 {
		return cfgs
	}
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}
	var out []graphConfig
	for _, cfg := range cfgs {
		if want[cfg.Name] {
			out = append(out, cfg)
		}
	}
	return out
}
