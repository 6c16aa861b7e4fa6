// SPDX-License-Identifier: MIT

package dataset

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/salesman/validation"
)

// Format names a file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the Format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// Decode reads a Dataset in format f from r. It does not validate.
func Decode(r io.Reader, f Format) (*Dataset, error) {
	var ds Dataset
	var err error
	switch f {
	case FormatJSON:
		err = json.NewDecoder(r).Decode(&ds)
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(&ds)
	case FormatTOML:
		_, err = toml.NewDecoder(r).Decode(&ds)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	if err != nil {
		return nil, fmt.Errorf("dataset: decode %s: %w", f, err)
	}

	return &ds, nil
}

// LoadFile decodes the file at path, choosing the format by extension, and
// validates the result.
func LoadFile(path string) (*Dataset, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer file.Close()

	ds, err := Decode(file, f)
	if err != nil {
		return nil, err
	}
	if err = Validate(ds); err != nil {
		return nil, err
	}

	return ds, nil
}

// Validate checks field rules (validator tags), unique vertex IDs, that
// every edge endpoint names a vertex and that no (source, destination) pair
// is listed twice.
func Validate(ds *Dataset) error {
	if err := validation.Default().Struct(ds); err != nil {
		return fmt.Errorf("dataset: %w", err)
	}

	seen := make(map[int]bool, len(ds.Vertices))
	for _, v := range ds.Vertices {
		if seen[v.ID] {
			return fmt.Errorf("%w: %d", ErrDuplicateVertex, v.ID)
		}
		seen[v.ID] = true
	}
	pairs := make(map[[2]int]int, len(ds.Edges))
	for i, e := range ds.Edges {
		for _, id := range []int{e.SourceNode, e.DestinationNode} {
			if !seen[id] {
				return fmt.Errorf("edge %d: %w: %d", i, ErrUnknownVertex, id)
			}
		}
		pair := [2]int{e.SourceNode, e.DestinationNode}
		if first, ok := pairs[pair]; ok {
			return fmt.Errorf("edge %d: %w: %d→%d repeats edge %d", i, ErrDuplicateEdge, pair[0], pair[1], first)
		}
		pairs[pair] = i
	}

	return nil
}
