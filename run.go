package main

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/agentflare-ai/go-docsync/internal/docsync"
)

// Version is reported by --version.
var Version = "dev"

type options struct {
	dir         string
	examplePath string
	libraryPath string
	readmePath  string
	verbose     bool
}

type cliApp struct {
	stderr io.Writer
	opts   options
}

func run(argv []string, stdout, stderr io.Writer) error {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(normalizeLegacyArgs(argv))
	return cmd.Execute()
}

func (app *cliApp) execute(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	paths := docsync.Paths{
		Root:    app.opts.dir,
		Example: app.opts.examplePath,
		Library: app.opts.libraryPath,
		Readme:  app.opts.readmePath,
	}
	_, err := docsync.New(paths, docsync.WithLogger(app.logger())).Run(ctx)
	return err
}

func (app *cliApp) logger() *slog.Logger {
	if !app.opts.verbose {
		return nil
	}
	return slog.New(slog.NewTextHandler(app.stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

var legacyLongFlagSet = map[string]struct{}{
	"dir":     {},
	"example": {},
	"lib":     {},
	"readme":  {},
	"verbose": {},
	"version": {},
}

// normalizeLegacyArgs rewrites single-dash long flags such as -example into
// the --example form Cobra expects.
func normalizeLegacyArgs(args []string) []string {
	if len(args) == 0 {
		return args
	}
	modified := false
	converted := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			converted = append(converted, args[i:]...)
			break
		}
		if !strings.HasPrefix(arg, "-") || strings.HasPrefix(arg, "--") || len(arg) <= 2 {
			converted = append(converted, arg)
			continue
		}
		name := arg[1:]
		if idx := strings.Index(name, "="); idx > 0 {
			name = name[:idx]
		}
		if _, ok := legacyLongFlagSet[name]; ok {
			converted = append(converted, "-"+arg)
			modified = true
			continue
		}
		converted = append(converted, arg)
	}
	if !modified {
		return args
	}
	return converted
}
