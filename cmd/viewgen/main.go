// Package main provides the CLI entrypoint for viewgen.
//
// viewgen keeps a generated view class in sync with a scene tree:
//   - Walks the tree and discovers typed bindings
//   - Names them through the configurable naming pipeline
//   - Regenerates or patches the artifact inside its marker regions
//
// The CLI runs against an in-memory host; the deferred attach protocol is
// only fully exercised inside a live engine session.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"viewgen/internal/attach"
	"viewgen/internal/ctxlog"
	"viewgen/internal/generate"
	"viewgen/internal/host"
	"viewgen/internal/settings"
	"viewgen/scene"
)

func main() {
	scenePath := flag.String("scene", "", "scene tree YAML file (required)")
	settingsPath := flag.String("settings", "", "generation settings YAML file")
	outPath := flag.String("out", "", "artifact path to create or patch (required)")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	if *scenePath == "" || *outPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	ctx := ctxlog.WithLogger(context.Background(), logger)

	if err := run(ctx, *scenePath, *settingsPath, *outPath); err != nil {
		logger.Error("viewgen failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, scenePath, settingsPath, outPath string) error {
	root, err := scene.LoadFile(scenePath)
	if err != nil {
		return err
	}

	cfg := settings.Default()
	if settingsPath != "" {
		cfg, err = settings.LoadFile(settingsPath)
		if err != nil {
			return err
		}
	}

	existing := ""
	if data, err := os.ReadFile(outPath); err == nil {
		existing = string(data)
	}

	h := host.NewMemHost().AddRoot(root)
	attacher := attach.New(ctx, h, host.NewMemSessionStore(), &host.ReloadSignal{})
	svc := generate.NewService(attacher)

	result, err := svc.Generate(ctx, generate.Input{
		Root:         root,
		Existing:     existing,
		ArtifactPath: outPath,
	}, cfg)
	if err != nil {
		return err
	}

	for _, w := range result.Diagnostics.Warnings {
		fmt.Fprintln(os.Stderr, "warning: "+w.String())
	}

	if !result.Changed {
		fmt.Printf("%s: up to date\n", outPath)

		return nil
	}

	if err := os.WriteFile(outPath, []byte(result.Text), 0o644); err != nil {
		return fmt.Errorf("writing artifact: %w", err)
	}

	fmt.Printf("%s: wrote class %s\n", outPath, result.ClassName)

	return nil
}
