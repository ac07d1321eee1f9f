package abi

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"
)

// LoadDir reads every *.json file in dir as a Solidity ABI array and returns
// the resulting definitions, named after the file (without extension), in
// sorted filename order so catalogue precedence is reproducible.
//
// A malformed file is skipped with a warning; loading never fails because of
// one bad entry. A missing directory is not an error — it just yields nothing.
func LoadDir(dir string, log zerolog.Logger) ([]Definition, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading ABI dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	var defs []Definition
	for _, name := range names {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			log.Warn().Str("file", path).Err(err).Msg("skipping unreadable ABI file")
			continue
		}
		def, err := ParseJSON(strings.TrimSuffix(name, ".json"), data)
		if err != nil {
			log.Warn().Str("file", path).Err(err).Msg("skipping malformed ABI file")
			continue
		}
		defs = append(defs, def)
	}
	return defs, nil
}
