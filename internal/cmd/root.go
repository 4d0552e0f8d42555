// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/aibor/vmargv/internal/sys"
)

// app holds the state shared by the subcommands of a single invocation.
type app struct {
	io       IO
	settings *settings
	logger   *slog.Logger
}

func newRootCommand(cfg IO, version string) *cobra.Command {
	a := &app{io: cfg, logger: newLogger(cfg.Stderr, false)}

	root := &cobra.Command{
		Use:   "vmargv",
		Short: "Compile virtual machine configurations into QEMU command lines",
		Long: `vmargv compiles virtual machine configuration snapshots into the
argument list of the matching qemu-system executable.

Print the command line of a virtual machine:
  vmargv compile vm.yaml

Show the host capabilities the arguments are derived from:
  vmargv probe`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			s, err := loadSettings(cmd)
			if err != nil {
				return err
			}

			a.settings = s
			a.logger = newLogger(cfg.Stderr, s.Debug)

			return nil
		},
	}

	root.SetIn(cfg.Stdin)
	root.SetOut(cfg.Stdout)
	root.SetErr(cfg.Stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &ParseArgsError{msg: "parse flags", err: err}
	})

	addPersistentFlags(root)

	root.AddCommand(
		newCompileCommand(a),
		newProbeCommand(a),
	)

	return root
}

// minimumArgs is like [cobra.MinimumNArgs] but returns a [ParseArgsError].
func minimumArgs(n int) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) < n {
			return &ParseArgsError{
				msg: fmt.Sprintf("requires at least %d arg(s), only received %d", n, len(args)),
			}
		}

		return nil
	}
}

// probeHost returns the capabilities of the running host with the CPU count
// override applied.
func (a *app) probeHost() (sys.HostProbe, error) {
	host, err := sys.ProbeHost()
	if err != nil {
		return sys.HostProbe{}, fmt.Errorf("probe host: %w", err)
	}

	if count := a.settings.CPUCount; count > 0 {
		host.PhysicalCPUs = count
		host.LogicalCPUs = count
		host.PerfPhysicalCPUs = 0
		host.PerfLogicalCPUs = 0
	}

	a.logger.Debug("Host probed",
		slog.String("arch", string(host.Arch)),
		slog.Int("physical_cpus", host.PhysicalCPUs),
		slog.Int("logical_cpus", host.LogicalCPUs),
		slog.String("accelerator", host.Accelerator))

	return host, nil
}
