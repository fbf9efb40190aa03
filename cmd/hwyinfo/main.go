// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command hwyinfo reports the SIMD capabilities of this machine and the
// linear algebra backends available on it.
//
// Usage:
//
//	hwyinfo                   # table of flags and backends
//	hwyinfo --json            # the same as a JSON document
//	hwyinfo --yaml            # the same as YAML
//	hwyinfo --check           # run the identity self-check on every backend
//	hwyinfo --backend scalar  # select a backend before reporting/checking
//
// The exit status is 1 when a self-check fails or a flag is invalid.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/ajroetker/hwymath/hwy"
	"github.com/ajroetker/hwymath/hwy/contrib/linalg"
)

// errCheckFailed is returned by run when at least one identity failed.
var errCheckFailed = errors.New("self-check failed")

type options struct {
	json    bool
	yaml    bool
	check   bool
	backend string
	color   bool
}

type backendReport struct {
	Name      string `json:"name" yaml:"name"`
	Level     string `json:"level" yaml:"level"`
	Priority  int    `json:"priority" yaml:"priority"`
	Requires  string `json:"requires" yaml:"requires"`
	Supported bool   `json:"supported" yaml:"supported"`
	Active    bool   `json:"active" yaml:"active"`
}

type report struct {
	Level    string          `json:"level" yaml:"level"`
	Width    int             `json:"width" yaml:"width"`
	Flags    map[string]bool `json:"flags" yaml:"flags"`
	Backends []backendReport `json:"backends" yaml:"backends"`
	Active   string          `json:"active" yaml:"active"`
	Checks   []linalg.Check  `json:"checks,omitempty" yaml:"checks,omitempty"`

	// flags in display order, for the table.
	flagList []hwy.Flag
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "hwyinfo",
		Short: "Report SIMD capabilities and linear algebra backends",
		Long: "hwyinfo prints the capability flags of this CPU, the dispatch level derived\n" +
			"from them and every registered linalg backend, optionally running the\n" +
			"identity self-check on each supported backend.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if f, ok := w.(*os.File); ok {
				opts.color = term.IsTerminal(int(f.Fd()))
			}
			return run(opts, w)
		},
	}

	cmd.Flags().BoolVar(&opts.json, "json", false, "emit a JSON document instead of the table")
	cmd.Flags().BoolVar(&opts.yaml, "yaml", false, "emit a YAML document instead of the table")
	cmd.Flags().BoolVar(&opts.check, "check", false, "run the identity self-check on every supported backend")
	cmd.Flags().StringVar(&opts.backend, "backend", "", "select this backend before reporting (default: best supported)")
	cmd.MarkFlagsMutuallyExclusive("json", "yaml")

	return cmd
}

func run(opts options, w io.Writer) error {
	if opts.json && opts.yaml {
		return errors.New("--json and --yaml are mutually exclusive")
	}
	if opts.backend != "" {
		if err := linalg.UseBackend(opts.backend); err != nil {
			return err
		}
	}

	r, err := collect(opts)
	if err != nil {
		return err
	}

	switch {
	case opts.json:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(r)
	case opts.yaml:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		err = enc.Encode(r)
		if err == nil {
			err = enc.Close()
		}
	default:
		err = writeTable(w, r, opts.color)
	}
	if err != nil {
		return err
	}

	for _, c := range r.Checks {
		if !c.Passed {
			return errCheckFailed
		}
	}
	return nil
}

func collect(opts options) (*report, error) {
	caps := hwy.CurrentCaps()
	r := &report{
		Level:    hwy.CurrentName(),
		Width:    hwy.CurrentWidth(),
		Flags:    make(map[string]bool),
		Active:   linalg.ActiveBackend().Name,
		flagList: caps.Flags(),
	}
	for _, f := range r.flagList {
		r.Flags[f.Name] = f.Present
	}

	for _, b := range linalg.Backends() {
		r.Backends = append(r.Backends, backendReport{
			Name:      b.Name,
			Level:     b.Level.String(),
			Priority:  b.Priority,
			Requires:  b.Requires,
			Supported: b.Supported,
			Active:    b.Active,
		})
		if !opts.check || !b.Supported {
			continue
		}
		// With --backend only that backend is checked.
		if opts.backend != "" && b.Name != opts.backend {
			continue
		}
		checks, err := linalg.SelfCheck(b.Name)
		if err != nil {
			return nil, fmt.Errorf("checking %s: %w", b.Name, err)
		}
		r.Checks = append(r.Checks, checks...)
	}
	return r, nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

var (
	okStyle   = ansi.Style{}.ForegroundColor(ansi.Green)
	failStyle = ansi.Style{}.ForegroundColor(ansi.Red)
)

// status renders a check result. Both styles add the same number of escape
// bytes so tabwriter columns stay aligned.
func status(passed, color bool) string {
	switch {
	case passed && color:
		return okStyle.Styled("ok")
	case passed:
		return "ok"
	case color:
		return failStyle.Styled("FAIL")
	default:
		return "FAIL"
	}
}

func writeTable(w io.Writer, r *report, color bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "SIMD level:\t%s\n", r.Level)
	fmt.Fprintf(tw, "Width:\t%d bytes\n", r.Width)
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "FLAG\tPRESENT")
	for _, f := range r.flagList {
		fmt.Fprintf(tw, "%s\t%s\n", f.Name, yesNo(f.Present))
	}
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "BACKEND\tLEVEL\tPRIORITY\tREQUIRES\tSUPPORTED\tACTIVE")
	for _, b := range r.Backends {
		active := ""
		if b.Active {
			active = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%s\n", b.Name, b.Level, b.Priority, b.Requires, yesNo(b.Supported), active)
	}

	if len(r.Checks) > 0 {
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "BACKEND\tCHECK\tRESULT\tDETAIL")
		for _, c := range r.Checks {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", c.Backend, c.Name, status(c.Passed, color), c.Detail)
		}
	}
	return tw.Flush()
}
