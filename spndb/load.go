package spndb

import (
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
	"github.com/aldas/go-j1939-client"
)

// definitionsFile is root of TOML SPN definitions document.
type definitionsFile struct {
	SPNs []j1939.SPNDef `toml:"spn"`
}

// LoadDefinitions loads SPN definitions from TOML file. This allows treating
// catalog content as configuration data, for example carrying manufacturer
// specific SPNs next to the built-in catalog:
//
//	[[spn]]
//	spn = 190
//	name = "engine_speed"
//	pgn = 61444
//	start_byte = 3
//	bit_length = 16
//	scale = 0.125
//	unit = "RPM"
//	data_type = "uint16"
//
// Loaded definitions are checked with Validate before returning.
func LoadDefinitions(filesystem fs.FS, path string) ([]j1939.SPNDef, error) {
	f, err := filesystem.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var doc definitionsFile
	if _, err := toml.NewDecoder(f).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse spn definitions file: %w", err)
	}
	if err := Validate(doc.SPNs); err != nil {
		return nil, fmt.Errorf("invalid spn definitions file: %w", err)
	}
	return doc.SPNs, nil
}
