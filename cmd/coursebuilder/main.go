package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/berch-t/youtube-to-courses/internal/config"
	"github.com/berch-t/youtube-to-courses/internal/logger"
	"github.com/joho/godotenv"
)

const usage = `Usage: coursebuilder [-config config.yaml] <command> [flags] [args]

Commands:
  build <transcript.md>   build one course document
  batch <dir>             build every transcript in a directory
  watch                   build whatever lands in paths.input
  transcribe <media>      turn an audio or video file into a transcript

Run "coursebuilder <command> -h" for command flags.
`

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	_ = godotenv.Load()

	global := flag.NewFlagSet("coursebuilder", flag.ContinueOnError)
	global.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	configPath := global.String("config", "config.yaml", "path to the YAML configuration")
	if err := global.Parse(args); err != nil {
		return 2
	}
	if global.NArg() == 0 {
		global.Usage()
		return 2
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}

	log := logger.NewWithFormat(cfg.Logging.Level, cfg.Logging.Format)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log.Debug(ctx, "System: %s/%s, CPU cores: %d", runtime.GOOS, runtime.GOARCH, runtime.NumCPU())

	app := newApp(ctx, cfg, log)
	defer app.close()

	cmd, rest := global.Arg(0), global.Args()[1:]
	switch cmd {
	case "build":
		return app.build(ctx, rest)
	case "batch":
		return app.batch(ctx, rest)
	case "watch":
		return app.watch(ctx, rest)
	case "transcribe":
		return app.transcribe(ctx, rest)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", cmd)
		global.Usage()
		return 2
	}
}

// loadConfig reads path, or falls back to defaults when the default file
// is absent.
func loadConfig(path string) (*config.Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) && path == "config.yaml" {
		return config.Default(), nil
	}
	return config.Load(path)
}
