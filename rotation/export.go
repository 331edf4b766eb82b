// Copyright (c) FabricOps Contributors
// SPDX-License-Identifier: Apache-2.0

package rotation

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Exporter persists descriptors fetched from the console.
type Exporter interface {
	// ExportJSON writes v pretty-printed as JSON under the given file name.
	ExportJSON(name string, v any) error
}

var _ Exporter = (*fileExporter)(nil)

type fileExporter struct {
	dir string
}

// NewFileExporter returns an Exporter writing into dir. An empty dir means
// the current working directory.
func NewFileExporter(dir string) Exporter {
	if dir == "" {
		dir = "."
	}
	return &fileExporter{dir: dir}
}

func (fe *fileExporter) ExportJSON(name string, v any) error {
	// Four-space indentation, matching the export format consumers of these
	// files already parse.
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	return os.WriteFile(filepath.Join(fe.dir, name), data, 0o644)
}
