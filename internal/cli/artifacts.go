package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/soerensenkarl/DrawTruss/pkg/errors"
	"github.com/soerensenkarl/DrawTruss/pkg/pipeline"
)

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .json, etc.), it strips that extension.
// This is used when generating multiple files (e.g., bridge.svg, bridge.dot).
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// artifactWriteParams bundles the inputs to writeArtifacts.
type artifactWriteParams struct {
	artifacts map[string][]byte
	formats   []string
	input     string // input file the output paths derive from
	output    string // explicit output path or base path
	cacheHit  bool
	nodes     int
	edges     int
}

// writeArtifacts writes each rendered format to its own file and prints
// a summary. A single format goes to the --output path directly; with
// multiple formats the path is treated as a base and the format becomes
// the extension.
func writeArtifacts(p artifactWriteParams) error {
	var paths []string

	if len(p.formats) == 1 {
		path := p.output
		if path == "" {
			path = basePath("", p.input) + "." + p.formats[0]
		}
		paths = append(paths, path)
	} else {
		base := basePath(p.output, p.input)
		for _, format := range p.formats {
			paths = append(paths, fmt.Sprintf("%s.%s", base, format))
		}
	}

	for i, format := range p.formats {
		if err := errors.ValidateOutputPath(paths[i]); err != nil {
			return err
		}
		if err := os.WriteFile(paths[i], p.artifacts[format], 0o644); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", paths[i])
		}
	}

	printSuccess("Generated %d file(s)", len(paths))
	for _, path := range paths {
		printFile(path)
	}
	printStats(p.nodes, p.edges, p.cacheHit)
	return nil
}
