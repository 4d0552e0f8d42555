// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/mattn/go-shellwords"
)

const argsEnvVar = "VMARGV_ARGS"

// EnvArgs returns vmargv arguments from the environment.
//
// The value is split like a shell would split it, so arguments with
// whitespace can be quoted.
func EnvArgs() ([]string, error) {
	args, err := shellwords.Parse(os.Getenv(argsEnvVar))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", argsEnvVar, err)
	}

	return args, nil
}

// LocalConfigArgs returns vmargv arguments from a local config file.
//
// The file's format is one argument per line. Environment variables may be used
// and are expanded with [os.ExpandEnv].
func LocalConfigArgs(fsys fs.FS, file string) ([]string, error) {
	conf, err := fs.ReadFile(fsys, file)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}

		return nil, fmt.Errorf("read file: %w", err)
	}

	args := []string{}

	expandedConf := os.ExpandEnv(string(conf))
	for line := range strings.SplitSeq(expandedConf, "\n") {
		line = strings.TrimSpace(line)
		if line != "" && !strings.HasPrefix(line, "#") {
			args = append(args, line)
		}
	}

	return args, nil
}

// MergedArgs returns the given arguments with the arguments from the local
// config file and the environment inserted after the program name. Explicit
// arguments come last, so they take precedence.
func MergedArgs(args []string, fsys fs.FS, file string) ([]string, error) {
	localArgs, err := LocalConfigArgs(fsys, file)
	if err != nil {
		return nil, err
	}

	envArgs, err := EnvArgs()
	if err != nil {
		return nil, err
	}

	if len(args) == 0 {
		args = []string{""}
	}

	merged := make([]string, 0, len(args)+len(localArgs)+len(envArgs))
	merged = append(merged, args[0])
	merged = append(merged, localArgs...)
	merged = append(merged, envArgs...)
	merged = append(merged, args[1:]...)

	return merged, nil
}
