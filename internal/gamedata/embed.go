// Package gamedata provides the embedded content catalogs: trap
// definitions consumed by level generation and tile display definitions
// consumed by rendering.
package gamedata

import (
	"embed"
	"encoding/json"
	"fmt"
)

// dataFS embeds all JSON catalogs from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS

// Load reads and unmarshals one embedded JSON catalog.
func Load[T any](filename string) (T, error) {
	var result T

	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("failed to read embedded file %s: %w", filename, err)
	}

	if err := json.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("failed to parse JSON from %s: %w", filename, err)
	}

	return result, nil
}

// MustLoad reads and unmarshals an embedded JSON catalog, panicking on
// error. Use this for data the game cannot run without; the files are
// compiled in, so a failure here is a build defect, not a runtime
// condition.
func MustLoad[T any](filename string) T {
	result, err := Load[T](filename)
	if err != nil {
		panic(err)
	}
	return result
}
