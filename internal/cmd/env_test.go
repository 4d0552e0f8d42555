// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aibor/vmargv/internal/cmd"
)

func TestEnvArgs(t *testing.T) {
	tests := []struct {
		name   string
		env    string
		output []string
	}{
		{
			name: "empty",
			env:  "",
		},
		{
			name:   "multiple args",
			env:    "--format shell --debug",
			output: []string{"--format", "shell", "--debug"},
		},
		{
			name:   "quoted",
			env:    `--resources "/opt/vm argv/resources"`,
			output: []string{"--resources", "/opt/vm argv/resources"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("VMARGV_ARGS", tt.env)

			args, err := cmd.EnvArgs()
			require.NoError(t, err)

			if len(tt.output) == 0 {
				assert.Empty(t, args)
			} else {
				assert.Equal(t, tt.output, args)
			}
		})
	}
}

func TestEnvArgs_UnbalancedQuote(t *testing.T) {
	t.Setenv("VMARGV_ARGS", `--resources "/opt`)

	_, err := cmd.EnvArgs()
	assert.Error(t, err)
}

func TestLocalConfigArgs(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		env      map[string]string
		expected []string
	}{
		{
			name:     "empty",
			content:  "",
			expected: []string{},
		},
		{
			name:     "single line",
			content:  "--format=null\n--resources=/opt/vm argv",
			expected: []string{"--format=null", "--resources=/opt/vm argv"},
		},
		{
			name:     "multiple lines",
			content:  "--format\nshell\n\n--debug\n",
			expected: []string{"--format", "shell", "--debug"},
		},
		{
			name:     "comments",
			content:  "# resources of the project\n--resources=res\n",
			expected: []string{"--resources=res"},
		},
		{
			name:     "with env vars",
			content:  "--resources=${VAR1}\n--data-dir=$VAR2/data\n--runtime-dir=${VAR3}/run\n",
			env:      map[string]string{"VAR1": "/res", "VAR2": "/var"},
			expected: []string{"--resources=/res", "--data-dir=/var/data", "--runtime-dir=/run"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testFS := fstest.MapFS{
				"conf": &fstest.MapFile{
					Data: []byte(tt.content),
				},
			}

			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			content, err := cmd.LocalConfigArgs(testFS, "conf")
			require.NoError(t, err)

			assert.Equal(t, tt.expected, content)
		})
	}
}

func TestLocalConfigArgs_Missing(t *testing.T) {
	args, err := cmd.LocalConfigArgs(fstest.MapFS{}, "conf")
	require.NoError(t, err)
	assert.Empty(t, args)
}

func TestMergedArgs(t *testing.T) {
	t.Setenv("VMARGV_ARGS", "--format null")

	testFS := fstest.MapFS{
		".vmargv-args": &fstest.MapFile{
			Data: []byte("--debug\n"),
		},
	}

	args, err := cmd.MergedArgs(
		[]string{"vmargv", "compile", "vm.yaml"},
		testFS,
		".vmargv-args",
	)
	require.NoError(t, err)

	expected := []string{"vmargv", "--debug", "--format", "null", "compile", "vm.yaml"}
	assert.Equal(t, expected, args)
}
