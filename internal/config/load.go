// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and validates the [Snapshot] from the YAML file at the given
// path.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	return Decode(bytes.NewReader(data))
}

// Decode reads and validates a [Snapshot] from YAML. Unknown fields are
// rejected.
func Decode(r io.Reader) (*Snapshot, error) {
	var snapshot Snapshot

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	err := decoder.Decode(&snapshot)
	if err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}

	snapshot.applyDefaults()

	err = snapshot.Validate()
	if err != nil {
		return nil, err
	}

	return &snapshot, nil
}

func (s *Snapshot) applyDefaults() {
	if s.Input.USBBusSupport == "" {
		s.Input.USBBusSupport = USBDisabled
	}

	if s.Sharing.DirectoryShareMode == "" {
		s.Sharing.DirectoryShareMode = ShareNone
	}

	for idx := range s.Drives {
		if s.Drives[idx].Interface == "" {
			s.Drives[idx].Interface = InterfaceNone
		}

		if s.Drives[idx].ImageType == "" {
			s.Drives[idx].ImageType = ImageDisk
		}
	}

	for idx := range s.Networks {
		if s.Networks[idx].Mode == "" {
			s.Networks[idx].Mode = NetworkEmulated
		}
	}
}
