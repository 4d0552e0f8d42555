// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newProbeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "probe",
		Short: "Print the capabilities of the host",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.probe()
		},
	}
}

func (a *app) probe() error {
	host, err := a.probeHost()
	if err != nil {
		return err
	}

	encoder := yaml.NewEncoder(a.io.Stdout)
	encoder.SetIndent(2)

	err = encoder.Encode(host)
	if err != nil {
		return fmt.Errorf("encode host: %w", err)
	}

	err = encoder.Close()
	if err != nil {
		return fmt.Errorf("encode host: %w", err)
	}

	return nil
}
