package parser

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ParseFile picks the decoder from the file extension: ".json" is read as
// JSON, everything else as YAML.
func ParseFile(path string) (*YFile, error) {
	var (
		f   *YFile
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		f, err = ParseJSON(path)
	default:
		f, err = ParseYAML(path)
	}
	if err != nil {
		return nil, fmt.Errorf("parse topology %s: %w", path, err)
	}
	return f, nil
}
