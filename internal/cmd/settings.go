// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	keyConfig     = "config"
	keyResources  = "resources"
	keyRuntimeDir = "runtime-dir"
	keyDataDir    = "data-dir"
	keyDebug      = "debug"
	keyFormat     = "format"
	keyCPUCount   = "cpu-count"
)

const (
	envPrefix  = "VMARGV"
	configDir  = "~/.vmargv"
	configName = "config"
)

// maxCPUCount is the upper bound accepted for the host CPU count override.
const maxCPUCount = 1024

// settings are the persistent settings shared by all subcommands. Each is
// read from flag, environment or config file, in that order of precedence.
type settings struct {
	Resources  string
	RuntimeDir string
	DataDir    string
	Debug      bool
	Format     outputFormat
	CPUCount   int
}

func addPersistentFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.String(keyConfig, "",
		"config file (default is "+filepath.Join(configDir, configName+".yaml")+")")
	flags.String(keyResources, filepath.Join(configDir, "resources"),
		"directory with bundled resources")
	flags.String(keyRuntimeDir, os.TempDir(),
		"directory for display sockets")
	flags.String(keyDataDir, filepath.Join(configDir, "data"),
		"directory with per virtual machine data files")
	flags.Bool(keyDebug, false,
		"enable debug output")
	flags.String(keyFormat, string(formatLines),
		"output format: lines, null or shell")
	flags.Var(&LimitedUintValue{Upper: maxCPUCount}, keyCPUCount,
		"override the host's CPU count (0 to probe)")
}

// loadSettings reads the settings for the command from its flags, the
// environment and the config file.
func loadSettings(cmd *cobra.Command) (*settings, error) {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	err := v.BindPFlags(cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}

	err = readConfig(v, v.GetString(keyConfig))
	if err != nil {
		return nil, err
	}

	format, err := parseOutputFormat(v.GetString(keyFormat))
	if err != nil {
		return nil, &ParseArgsError{msg: "invalid " + keyFormat, err: err}
	}

	cpuCount := v.GetInt(keyCPUCount)
	if cpuCount < 0 || cpuCount > maxCPUCount {
		return nil, &ParseArgsError{
			msg: "invalid " + keyCPUCount,
			err: fmt.Errorf("%d: %w", cpuCount, ErrValueOutOfRange),
		}
	}

	return &settings{
		Resources:  v.GetString(keyResources),
		RuntimeDir: v.GetString(keyRuntimeDir),
		DataDir:    v.GetString(keyDataDir),
		Debug:      v.GetBool(keyDebug),
		Format:     format,
		CPUCount:   cpuCount,
	}, nil
}

// readConfig reads the given config file. Without a file, the default
// location is tried and a missing file is not an error.
func readConfig(v *viper.Viper, file string) error {
	if file != "" {
		path, err := homedir.Expand(file)
		if err != nil {
			return fmt.Errorf("expand config path: %w", err)
		}

		v.SetConfigFile(path)
	} else {
		dir, err := homedir.Expand(configDir)
		if err != nil {
			return fmt.Errorf("expand config dir: %w", err)
		}

		v.AddConfigPath(dir)
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
	}

	err := v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file == "" && errors.As(err, &notFound) {
			return nil
		}

		return fmt.Errorf("read config: %w", err)
	}

	return nil
}
