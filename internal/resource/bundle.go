// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package resource

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/mitchellh/go-homedir"

	"github.com/aibor/vmargv/internal/sys"
)

// Required are the bundled resources that must exist for the compiled
// arguments to be usable.
var Required = []string{"qemu"}

// Bundle resolves paths in fixed directories.
type Bundle struct {
	// ResourceDir contains the bundled resources.
	ResourceDir string

	// RuntimeDir is where the display channel sockets are created.
	RuntimeDir string

	// DataDir contains a directory with the data files of each virtual
	// machine.
	DataDir string
}

// NewBundle returns a [Bundle] with the given directories. A leading "~" is
// expanded to the user's home directory and relative paths are made
// absolute.
func NewBundle(resourceDir, runtimeDir, dataDir string) (*Bundle, error) {
	dirs := []*string{&resourceDir, &runtimeDir, &dataDir}

	for _, dir := range dirs {
		expanded, err := homedir.Expand(*dir)
		if err != nil {
			return nil, fmt.Errorf("expand %s: %w", *dir, err)
		}

		*dir, err = sys.AbsolutePath(expanded)
		if err != nil {
			return nil, err
		}
	}

	return &Bundle{
		ResourceDir: resourceDir,
		RuntimeDir:  runtimeDir,
		DataDir:     dataDir,
	}, nil
}

// ResourcePath returns the path of the named bundled resource.
func (b *Bundle) ResourcePath(name string) string {
	return filepath.Join(b.ResourceDir, name)
}

// SocketPath returns the SPICE socket path of the virtual machine.
func (b *Bundle) SocketPath(id uuid.UUID) string {
	return filepath.Join(b.RuntimeDir, id.String()+".spice")
}

// DataPath returns the path of the named data file of the virtual machine.
func (b *Bundle) DataPath(id uuid.UUID, name string) string {
	return filepath.Join(b.DataDir, id.String(), name)
}

// Check returns [ErrResourceMissing] if any of the [Required] resources does
// not exist.
func (b *Bundle) Check() error {
	for _, name := range Required {
		path := b.ResourcePath(name)

		_, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrResourceMissing, name, err)
		}
	}

	return nil
}

// OSFiles checks for files in the host's file system.
type OSFiles struct{}

// Exists returns if the path exists. Any error is treated as absent.
func (OSFiles) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
