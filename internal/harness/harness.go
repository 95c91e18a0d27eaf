// Package harness orchestrates golden-output runs: it scans the input
// directory, executes the templated command per file, slices the output and
// records or compares baselines.
package harness

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"goldout/internal/baseline"
	"goldout/internal/command"
	"goldout/internal/config"
	"goldout/internal/linerange"
	"goldout/internal/runner"
)

// ErrInputDirMissing is returned when the configured input directory does
// not exist.
var ErrInputDirMissing = errors.New("input directory does not exist")

// Harness runs cases strictly sequentially: one command completes before the
// next begins.
type Harness struct {
	cfg   config.Config
	tmpl  command.Template
	spec  *linerange.Spec
	store *baseline.Store
	run   *runner.Runner
	rep   *Reporter
}

// New validates the configuration and builds a harness. The range expression
// syntax is checked here, before any case runs; bounds are resolved per
// output. The baseline directory is created up front.
func New(cfg config.Config, rep *Reporter) (*Harness, error) {
	if _, err := os.Stat(cfg.InputDir); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("`%s`: %w", cfg.InputDir, ErrInputDirMissing)
		}
		return nil, err
	}

	var spec *linerange.Spec
	if cfg.Range != "" {
		var err error
		spec, err = linerange.Parse(cfg.Range)
		if err != nil {
			return nil, err
		}
	}

	store := baseline.NewStore(cfg.ExpectedDir)
	if err := store.EnsureDir(); err != nil {
		return nil, err
	}

	return &Harness{
		cfg:   cfg,
		tmpl:  command.NewTemplate(cfg.Command),
		spec:  spec,
		store: store,
		run:   &runner.Runner{Timeout: cfg.Timeout, Trace: rep.Command},
		rep:   rep,
	}, nil
}

// Scan lists the input directory and returns one case per file passing the
// extension filter, in directory order.
func (h *Harness) Scan() ([]Case, error) {
	entries, err := os.ReadDir(h.cfg.InputDir)
	if err != nil {
		return nil, err
	}

	var cases []Case
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if !h.matches(ext) {
			continue
		}
		cases = append(cases, Case{
			Name: strings.TrimSuffix(entry.Name(), ext),
			Ext:  ext,
			Path: filepath.Join(h.cfg.InputDir, entry.Name()),
		})
	}
	return cases, nil
}

// matches reports whether ext passes the filter. No filter accepts all files.
func (h *Harness) matches(ext string) bool {
	if len(h.cfg.Filter) == 0 {
		return true
	}
	for _, f := range h.cfg.Filter {
		if f == ext {
			return true
		}
	}
	return false
}

// produce builds and runs the case's command, then slices the captured
// output to the configured range. Any error here is fatal to the run.
func (h *Harness) produce(c Case) (string, error) {
	out, err := h.run.Run(h.tmpl.Build(c.Path))
	if err != nil {
		return "", err
	}

	lines := strings.Split(out, "\n")
	sliced, err := h.spec.Apply(lines)
	if err != nil {
		return "", err
	}
	return strings.Join(sliced, "\n"), nil
}

// Run executes the configured modes: Record (when enabled) fully completes
// first, then Test always follows. A mismatch or missing baseline is a
// case-scoped outcome and processing continues; a subprocess failure or
// range bounds error aborts the run and is returned alongside the partial
// summary.
func (h *Harness) Run() (Summary, error) {
	var sum Summary

	cases, err := h.Scan()
	if err != nil {
		return sum, err
	}

	if !h.tmpl.HasPlaceholder() {
		h.rep.Warnf("command template does not contain any %s to match files", command.Placeholder)
	}

	if h.cfg.Record {
		if err := h.record(cases, &sum); err != nil {
			return sum, err
		}
	}

	if err := h.test(cases, &sum); err != nil {
		return sum, err
	}
	return sum, nil
}

func (h *Harness) record(cases []Case, sum *Summary) error {
	h.rep.Section("Recording examples", true)

	for _, c := range cases {
		out, err := h.produce(c)
		if err != nil {
			return err
		}
		if err := h.store.Write(c.Name, out); err != nil {
			return err
		}

		path := h.store.Path(c.Name)
		h.rep.Recorded(path)
		sum.Recorded = append(sum.Recorded, Outcome{
			Case:         c,
			Status:       StatusRecorded,
			Got:          out,
			BaselinePath: path,
		})
	}
	return nil
}

func (h *Harness) test(cases []Case, sum *Summary) error {
	// Record mode already ends on a separator line
	h.rep.Section("Testing examples", !h.cfg.Record)

	for _, c := range cases {
		got, err := h.produce(c)
		if err != nil {
			return err
		}

		path := h.store.Path(c.Name)
		outcome := Outcome{Case: c, Got: got, BaselinePath: path}

		want, err := h.store.Read(c.Name)
		switch {
		case errors.Is(err, baseline.ErrBaselineNotFound):
			outcome.Status = StatusMissing
		case err != nil:
			return err
		case strings.TrimSpace(got) == strings.TrimSpace(want):
			outcome.Status = StatusPass
			outcome.Expected = want
		default:
			outcome.Status = StatusFail
			outcome.Expected = want
		}

		h.rep.Comparing(path)
		h.rep.Case(outcome)
		h.rep.Separator()
		sum.Tested = append(sum.Tested, outcome)
	}
	return nil
}
