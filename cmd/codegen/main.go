package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/delaneyj/effectparty/cmd/codegen/templates"
	"github.com/fsnotify/fsnotify"
	"github.com/urfave/cli/v3"
)

const (
	modelKey = "model"
	outKey   = "out"
	watchKey = "watch"
)

func main() {
	cmd := &cli.Command{
		Name:  "codegen",
		Usage: "Generate typed reactive records from a YAML model",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    modelKey,
				Aliases: []string{"m"},
				Usage:   "Model file to read",
				Value:   "models/models.yaml",
			},
			&cli.StringFlag{
				Name:    outKey,
				Aliases: []string{"o"},
				Usage:   "Output file, defaults to <model>_gen.go next to the model",
			},
			&cli.BoolFlag{
				Name:    watchKey,
				Aliases: []string{"w"},
				Usage:   "Regenerate whenever the model file changes",
			},
		},
		Action: generate,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := cmd.Run(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	modelPath := cmd.String(modelKey)
	outPath := cmd.String(outKey)
	if outPath == "" {
		outPath = strings.TrimSuffix(modelPath, filepath.Ext(modelPath)) + "_gen.go"
	}

	if err := generateOnce(modelPath, outPath); err != nil {
		return err
	}
	if !cmd.Bool(watchKey) {
		return nil
	}
	return watch(ctx, modelPath, outPath)
}

func generateOnce(modelPath, outPath string) error {
	start := time.Now()
	m, err := templates.LoadModel(modelPath)
	if err != nil {
		return err
	}
	src, err := templates.Generate(m)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outPath, src, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	log.Printf("Generated %d types into %s in %v", len(m.Types), outPath, time.Since(start))
	return nil
}

func watch(ctx context.Context, modelPath, outPath string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(modelPath); err != nil {
		return err
	}
	log.Printf("Watching %s", modelPath)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			// editors that save atomically show up as a create
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := generateOnce(modelPath, outPath); err != nil {
				log.Printf("Regenerate failed, keeping previous output: %v", err)
			}
			rewatch(watcher, modelPath)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("Watcher error: %v", err)
		}
	}
}

// rewatch follows the model after an atomic save swapped its inode. A model
// that is gone for good is logged, further changes would be missed silently
// otherwise.
func rewatch(watcher *fsnotify.Watcher, modelPath string) bool {
	if err := watcher.Add(modelPath); err != nil {
		log.Printf("Re-watching %s failed, changes will be missed: %v", modelPath, err)
		return false
	}
	return true
}
