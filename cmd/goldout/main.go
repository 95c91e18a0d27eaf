package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"goldout/internal/baseline"
	"goldout/internal/cli"
	"goldout/internal/config"
	"goldout/internal/harness"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run orchestrates the full execution flow.
// It returns an exit code: 0 on normal completion, including runs with
// reported mismatches; non-zero only for fatal conditions.
// This function is separated from main() to enable testing.
func run(args []string, stdout, stderr io.Writer) int {
	cmd, err := cli.ParseArgs(args)
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}

	cfg, err := resolveConfig(cmd)
	if err != nil {
		fmt.Fprintln(stderr, harness.FormatFatal(err))
		return 1
	}

	if cmd.List {
		return runList(cfg, cmd, stdout, stderr)
	}

	if cfg.InputDir == "" {
		fmt.Fprintln(stderr, "Error:", cli.ErrNoInputDir)
		return 1
	}
	if len(cfg.Command) == 0 {
		fmt.Fprintln(stderr, "Error:", cli.ErrNoCommand)
		return 1
	}

	color := !cmd.NoColor && harness.ColorEnabled(stdout)
	rep := harness.NewReporter(stdout, color)

	h, err := harness.New(cfg, rep)
	if err != nil {
		fmt.Fprintln(stderr, harness.FormatFatal(err))
		return 1
	}

	sum, err := h.Run()
	if err != nil {
		fmt.Fprintln(stderr, harness.FormatFatal(err))
		return 1
	}

	if cmd.JSONOutput {
		out, err := harness.FormatJSON(sum)
		if err != nil {
			fmt.Fprintf(stderr, "Error: cannot serialize summary: %v\n", err)
			return 1
		}
		fmt.Fprintln(stdout, out)
	}

	// Mismatches are reported per case and do not change the exit code
	return 0
}

// resolveConfig loads the config file (explicit flag path, or the default
// file when present) and overlays the CLI flags on top.
func resolveConfig(cmd cli.Command) (config.Config, error) {
	cfg := config.Default()

	switch {
	case cmd.ConfigPath != "":
		loaded, err := config.Load(cmd.ConfigPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	default:
		if _, err := os.Stat(config.DefaultFile); err == nil {
			loaded, err := config.Load(config.DefaultFile)
			if err != nil {
				return config.Config{}, err
			}
			cfg = loaded
		}
	}

	return config.Merge(cfg, config.Config{
		InputDir:    cmd.Dir,
		ExpectedDir: cmd.ExpectedDir,
		Filter:      cmd.Filter,
		Command:     cmd.Command,
		Range:       cmd.Range,
		Record:      cmd.Record,
		Timeout:     cmd.Timeout,
	}), nil
}

// runList prints the recorded baselines.
func runList(cfg config.Config, cmd cli.Command, stdout, stderr io.Writer) int {
	store := baseline.NewStore(cfg.ExpectedDir)

	summaries, err := store.List()
	if err != nil {
		fmt.Fprintf(stderr, "Error: cannot list baselines: %v\n", err)
		return 1
	}

	if len(summaries) == 0 {
		if cmd.JSONOutput {
			fmt.Fprintln(stdout, "[]")
		} else {
			fmt.Fprintln(stdout, "No baselines found")
		}
		return 0
	}

	if cmd.JSONOutput {
		data, err := json.MarshalIndent(summaries, "", "  ")
		if err != nil {
			fmt.Fprintf(stderr, "Error: cannot serialize baselines: %v\n", err)
			return 1
		}
		fmt.Fprintln(stdout, string(data))
	} else {
		for _, s := range summaries {
			fmt.Fprintf(stdout, "%s  %d bytes  %s\n", s.Name, s.Size, s.ModTime.Format(time.RFC3339))
		}
	}

	return 0
}
