// Package main provides the quarry command-line tool for inspecting and
// transforming whitespace-delimited matrix files.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/quarry-ml/quarry/crossval"
	"github.com/quarry-ml/quarry/internal/logging"
	"github.com/quarry-ml/quarry/matrix"
)

const version = "v0.1.0"

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: quarry [-config file.toml] <command> [args]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  version             Show version")
	fmt.Fprintln(os.Stderr, "  describe <file>     Print a matrix file and its dimensions")
	fmt.Fprintln(os.Stderr, "  sphere <file>       Standardize columns and print the result")
	fmt.Fprintln(os.Stderr, "  split <file> [k]    Partition rows into k balanced random folds")
}

func main() {
	configPath := flag.String("config", "", "optional TOML config file")
	flag.Usage = usage
	flag.Parse()

	cfg := defaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "quarry: %v\n", err)
			os.Exit(1)
		}
	}

	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "quarry: %v\n", err)
		os.Exit(1)
	}

	os.Exit(execute(flag.Args(), cfg, log))
}

// execute runs the command and returns the process exit code. The logger
// is flushed here, before os.Exit skips any deferred calls in main.
func execute(args []string, cfg cliConfig, log *zap.Logger) int {
	defer log.Sync() //nolint:errcheck // stderr sync failure is uninteresting

	if len(args) == 0 {
		usage()
		return 2
	}

	if err := run(args, cfg, log); err != nil {
		log.Error("command failed", zap.String("command", args[0]), zap.Error(err))
		return 1
	}
	return 0
}

func run(args []string, cfg cliConfig, log *zap.Logger) error {
	switch args[0] {
	case "version":
		fmt.Printf("quarry %s\n", version)
		return nil
	case "describe":
		if len(args) != 2 {
			return fmt.Errorf("describe takes exactly one file argument")
		}
		return describe(args[1], log)
	case "sphere":
		if len(args) != 2 {
			return fmt.Errorf("sphere takes exactly one file argument")
		}
		return sphere(args[1], log)
	case "split":
		if len(args) != 2 && len(args) != 3 {
			return fmt.Errorf("split takes a file argument and an optional fold count")
		}
		k := cfg.Splits
		if len(args) == 3 {
			var err error
			k, err = strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid fold count %q", args[2])
			}
		}
		return split(args[1], k, cfg.Seed, log)
	default:
		usage()
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func describe(path string, log *zap.Logger) error {
	m, err := matrix.Load(path)
	if err != nil {
		return err
	}
	log.Info("loaded matrix",
		zap.String("file", path),
		zap.Int("rows", m.Rows()),
		zap.Int("cols", m.Cols()),
	)
	fmt.Print(m)
	return nil
}

func sphere(path string, log *zap.Logger) error {
	m, err := matrix.Load(path)
	if err != nil {
		return err
	}
	m.Sphere()
	log.Info("sphered matrix",
		zap.String("file", path),
		zap.Int("rows", m.Rows()),
		zap.Int("cols", m.Cols()),
	)
	fmt.Print(m)
	return nil
}

func split(path string, k int, seed int64, log *zap.Logger) error {
	m, err := matrix.Load(path)
	if err != nil {
		return err
	}

	var rng *rand.Rand
	if seed != 0 {
		rng = rand.New(rand.NewSource(seed))
		log.Debug("using seeded fold assignment", zap.Int64("seed", seed))
	}

	folds, err := crossval.Split(m, k, rng)
	if err != nil {
		return err
	}
	log.Info("split matrix",
		zap.String("file", path),
		zap.Int("rows", m.Rows()),
		zap.Int("folds", k),
	)
	for i, fold := range folds {
		fmt.Printf("fold %d (%d rows):\n%s", i, fold.Rows(), fold)
	}
	return nil
}
