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

package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ajroetker/hwymath/hwy"
	"github.com/ajroetker/hwymath/hwy/contrib/linalg"
)

func TestRunTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run(options{}, &buf))

	out := buf.String()
	assert.Contains(t, out, "SIMD level:")
	assert.Contains(t, out, hwy.CurrentName())
	assert.Contains(t, out, "FLAG")
	assert.Contains(t, out, "archsimd")
	assert.Contains(t, out, "BACKEND")
	assert.Contains(t, out, "scalar")
	assert.NotContains(t, out, "CHECK", "no checks without --check")
}

func TestRunJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run(options{json: true, check: true}, &buf))

	var r report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &r))
	assert.Equal(t, hwy.CurrentName(), r.Level)
	assert.Equal(t, hwy.CurrentWidth(), r.Width)
	assert.Len(t, r.Flags, len(hwy.Caps{}.Flags()))
	assert.Equal(t, linalg.ActiveBackend().Name, r.Active)
	require.NotEmpty(t, r.Backends)
	assert.Equal(t, "scalar", r.Backends[len(r.Backends)-1].Name)

	require.NotEmpty(t, r.Checks)
	for _, c := range r.Checks {
		assert.True(t, c.Passed, "%s/%s: %s", c.Backend, c.Name, c.Detail)
	}
}

func TestRunYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run(options{yaml: true}, &buf))

	var r report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &r))
	assert.Equal(t, hwy.CurrentName(), r.Level)
	assert.NotEmpty(t, r.Backends)
	assert.Empty(t, r.Checks)
}

func TestRunBackend(t *testing.T) {
	t.Cleanup(linalg.Reselect)

	var buf bytes.Buffer
	require.NoError(t, run(options{json: true, check: true, backend: "scalar"}, &buf))

	var r report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &r))
	assert.Equal(t, "scalar", r.Active)
	require.NotEmpty(t, r.Checks)
	for _, c := range r.Checks {
		assert.Equal(t, "scalar", c.Backend)
	}
}

func TestRunErrors(t *testing.T) {
	t.Cleanup(linalg.Reselect)

	var buf bytes.Buffer
	assert.ErrorIs(t, run(options{backend: "bogus"}, &buf), linalg.ErrUnknownBackend)
	assert.Error(t, run(options{json: true, yaml: true}, &buf))
}

func TestRootCommand(t *testing.T) {
	t.Cleanup(linalg.Reselect)

	var buf bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--json", "--check", "--backend", "scalar"})
	require.NoError(t, cmd.Execute())

	var r report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &r))
	assert.Equal(t, "scalar", r.Active)
	assert.NotEmpty(t, r.Checks)
}

func TestRootCommandRejects(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"json and yaml", []string{"--json", "--yaml"}, "none of the others"},
		{"positional", []string{"extra"}, "unknown command"},
		{"unknown flag", []string{"--bogus"}, "unknown flag"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cmd := newRootCommand()
			cmd.SetOut(&buf)
			cmd.SetErr(&buf)
			cmd.SetArgs(tt.args)
			err := cmd.Execute()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestStatus(t *testing.T) {
	assert.Equal(t, "ok", status(true, false))
	assert.Equal(t, "FAIL", status(false, false))
	assert.Contains(t, status(false, true), "FAIL")
	assert.Equal(t, "\x1b[32mok\x1b[m", status(true, true))
	assert.Equal(t, "\x1b[31mFAIL\x1b[m", status(false, true))
	assert.Equal(t, "FAIL", ansi.Strip(status(false, true)))
}
