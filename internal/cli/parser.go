// Package cli parses command-line arguments into harness options.
package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrNoInputDir is returned when the required input directory flag is missing.
var ErrNoInputDir = errors.New("no input directory provided: usage: goldout --dir <path> --command <cmd...> [flags]")

// ErrNoCommand is returned when no command template is provided.
var ErrNoCommand = errors.New("no command provided: pass the command template after --command, e.g. --command python3 $")

// ErrMissingFlagValue is returned when a flag requires a value but none is provided.
var ErrMissingFlagValue = errors.New("flag requires a value")

// Command represents the parsed CLI input.
type Command struct {
	Record      bool          // --record / -r
	Dir         string        // --dir / -d <path>
	ExpectedDir string        // --expected-dir / -ed <path>
	Filter      []string      // --filter / -f <ext>, repeatable
	Range       string        // --range / -rng <start..end>
	Command     []string      // --command / -c <tokens...>, consumes the rest
	Timeout     time.Duration // --timeout <duration>

	ConfigPath string // --config <path>
	List       bool   // --list
	JSONOutput bool   // --json
	NoColor    bool   // --no-color
}

// ParseArgs parses CLI arguments into a Command.
// It expects args to be os.Args[1:] (excluding the program name).
// The --command flag consumes every remaining argument as a template token.
func ParseArgs(args []string) (Command, error) {
	var cmd Command

	i := 0
	for i < len(args) {
		arg := args[i]

		if !strings.HasPrefix(arg, "-") {
			return Command{}, fmt.Errorf("unexpected argument '%s'", arg)
		}

		switch arg {
		case "--record", "-r":
			cmd.Record = true
		case "--dir", "-d":
			if i+1 >= len(args) {
				return Command{}, fmt.Errorf("%s: %w", arg, ErrMissingFlagValue)
			}
			i++
			cmd.Dir = args[i]
		case "--expected-dir", "-ed":
			if i+1 >= len(args) {
				return Command{}, fmt.Errorf("%s: %w", arg, ErrMissingFlagValue)
			}
			i++
			cmd.ExpectedDir = args[i]
		case "--filter", "-f":
			if i+1 >= len(args) {
				return Command{}, fmt.Errorf("%s: %w", arg, ErrMissingFlagValue)
			}
			i++
			cmd.Filter = append(cmd.Filter, args[i])
		case "--range", "-rng":
			if i+1 >= len(args) {
				return Command{}, fmt.Errorf("%s: %w", arg, ErrMissingFlagValue)
			}
			i++
			cmd.Range = args[i]
		case "--timeout":
			if i+1 >= len(args) {
				return Command{}, fmt.Errorf("%s: %w", arg, ErrMissingFlagValue)
			}
			i++
			d, err := time.ParseDuration(args[i])
			if err != nil {
				return Command{}, fmt.Errorf("invalid timeout '%s': %w", args[i], err)
			}
			cmd.Timeout = d
		case "--config":
			if i+1 >= len(args) {
				return Command{}, fmt.Errorf("%s: %w", arg, ErrMissingFlagValue)
			}
			i++
			cmd.ConfigPath = args[i]
		case "--list":
			cmd.List = true
		case "--json":
			cmd.JSONOutput = true
		case "--no-color":
			cmd.NoColor = true
		case "--command", "-c":
			// Everything after --command is a template token
			if i+1 >= len(args) {
				return Command{}, ErrNoCommand
			}
			cmd.Command = args[i+1:]
			return cmd, nil
		default:
			return Command{}, fmt.Errorf("unknown flag '%s'", arg)
		}
		i++
	}

	return cmd, nil
}
