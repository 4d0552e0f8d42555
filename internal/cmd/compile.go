// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/aibor/vmargv/internal/config"
	"github.com/aibor/vmargv/internal/qemu"
	"github.com/aibor/vmargv/internal/resource"
)

func newCompileCommand(a *app) *cobra.Command {
	var argsOnly bool

	cmd := &cobra.Command{
		Use:   "compile <snapshot.yaml>...",
		Short: "Print the QEMU command line of virtual machine snapshots",
		Long: `Print the QEMU command line of each given virtual machine snapshot.

The command lines are printed in the order of the given files. The first
argument is the qemu-system executable for the guest architecture unless
--args-only is given.`,
		Args: minimumArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.compile(cmd.Context(), args, argsOnly)
		},
	}

	cmd.Flags().BoolVar(&argsOnly, "args-only", false,
		"omit the qemu-system executable")

	return cmd
}

func (a *app) newCompiler() (*qemu.Compiler, error) {
	bundle, err := resource.NewBundle(
		a.settings.Resources,
		a.settings.RuntimeDir,
		a.settings.DataDir,
	)
	if err != nil {
		return nil, fmt.Errorf("resources: %w", err)
	}

	err = bundle.Check()
	if err != nil {
		return nil, err
	}

	host, err := a.probeHost()
	if err != nil {
		return nil, err
	}

	return qemu.NewCompiler(qemu.Environment{
		Host:     host,
		Resolver: bundle,
		Files:    resource.OSFiles{},
		Logger:   a.logger,
	}), nil
}

// compile compiles the snapshot files concurrently and prints the results in
// the order of the files.
func (a *app) compile(ctx context.Context, paths []string, argsOnly bool) error {
	compiler, err := a.newCompiler()
	if err != nil {
		return err
	}

	results := make([][]string, len(paths))

	group, ctx := errgroup.WithContext(ctx)

	for idx, path := range paths {
		group.Go(func() error {
			err := ctx.Err()
			if err != nil {
				return err //nolint:wrapcheck
			}

			snapshot, err := config.Load(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			args := compiler.Compile(snapshot)
			if !argsOnly {
				args = append([]string{snapshot.System.Architecture.Executable()}, args...)
			}

			a.logger.Debug("Snapshot compiled",
				slog.String("path", path),
				slog.String("name", snapshot.Information.Name))

			results[idx] = args

			return nil
		})
	}

	err = group.Wait()
	if err != nil {
		return err //nolint:wrapcheck
	}

	return writeArgumentLists(a.io.Stdout, a.settings.Format, results)
}
