// Package spndb provides built-in database of SAE J1939 SPN definitions with
// lookup indexes and frame level decoding against it.
//
// Database lookups are the hot path of frame decoding so both indexes are
// binary-searched sorted slices built once at construction time. A Database
// is immutable after NewDatabase returns and is safe for any number of
// concurrent readers without locking.
package spndb

import (
	"fmt"
	"sort"
	"sync"

	"github.com/aldas/go-j1939-client"
)

// pgnRun locates contiguous run of definitions for single PGN inside byPGN slice.
type pgnRun struct {
	pgn   uint32
	start int
	count int
}

// Database holds SPN definitions with indexes for PGN and SPN number lookups.
type Database struct {
	byPGN []j1939.SPNDef // sorted by PGN, catalog order within each PGN
	runs  []pgnRun       // sorted by PGN
	bySPN []j1939.SPNDef // sorted by SPN number
}

// NewDatabase builds lookup indexes over given definitions. The definitions
// slice is copied, callers may not see changes to it reflected in the
// database afterwards.
func NewDatabase(defs []j1939.SPNDef) *Database {
	byPGN := make([]j1939.SPNDef, len(defs))
	copy(byPGN, defs)
	sort.SliceStable(byPGN, func(i, j int) bool { return byPGN[i].PGN < byPGN[j].PGN })

	runs := make([]pgnRun, 0, 16)
	for i, def := range byPGN {
		if len(runs) == 0 || runs[len(runs)-1].pgn != def.PGN {
			runs = append(runs, pgnRun{pgn: def.PGN, start: i})
		}
		runs[len(runs)-1].count++
	}

	bySPN := make([]j1939.SPNDef, len(defs))
	copy(bySPN, defs)
	sort.SliceStable(bySPN, func(i, j int) bool { return bySPN[i].SPN < bySPN[j].SPN })

	return &Database{byPGN: byPGN, runs: runs, bySPN: bySPN}
}

// DefinitionsForPGN returns all SPN definitions transmitted within given PGN
// in catalog order. Second return value is false when PGN is not known to the
// database, a known PGN never has zero definitions. Returned slice is shared
// and must not be modified.
func (db *Database) DefinitionsForPGN(pgn uint32) ([]j1939.SPNDef, bool) {
	i := sort.Search(len(db.runs), func(i int) bool { return db.runs[i].pgn >= pgn })
	if i == len(db.runs) || db.runs[i].pgn != pgn {
		return nil, false
	}
	r := db.runs[i]
	return db.byPGN[r.start : r.start+r.count : r.start+r.count], true
}

// DefinitionForSPN returns definition for given SPN number. Duplicate SPN
// numbers are a catalog authoring bug, should the database contain them the
// definition appearing first in the original definitions order is returned.
func (db *Database) DefinitionForSPN(spn uint32) (j1939.SPNDef, bool) {
	i := sort.Search(len(db.bySPN), func(i int) bool { return db.bySPN[i].SPN >= spn })
	if i == len(db.bySPN) || db.bySPN[i].SPN != spn {
		return j1939.SPNDef{}, false
	}
	return db.bySPN[i], true
}

// Stats returns number of distinct PGNs and total number of SPN definitions.
func (db *Database) Stats() (int, int) {
	return len(db.runs), len(db.byPGN)
}

// PGNs returns ascending deduplicated list of PGNs known to the database.
func (db *Database) PGNs() []uint32 {
	result := make([]uint32, len(db.runs))
	for i, r := range db.runs {
		result[i] = r.pgn
	}
	return result
}

var (
	defaultOnce sync.Once
	defaultDB   *Database
)

// Default returns process-wide database over the built-in Definitions
// catalog. Indexes are built on first call, every caller after that observes
// the same finished database.
func Default() *Database {
	defaultOnce.Do(func() {
		defaultDB = NewDatabase(Definitions)
	})
	return defaultDB
}

// Validate checks catalog authoring invariants: every field must fit into the
// 8 byte frame and into its declared data type and SPN numbers must be
// unique. Meant for tests and for tooling that loads user supplied catalogs,
// decode paths do not run it.
func Validate(defs []j1939.SPNDef) error {
	seen := make(map[uint32]string, len(defs))
	for _, def := range defs {
		width := def.DataType.ByteWidth()
		if int(def.StartByte)+width > j1939.MaxFrameDataLength {
			return fmt.Errorf("spn %v: field at byte %v does not fit into %v byte frame", def.SPN, def.StartByte, j1939.MaxFrameDataLength)
		}
		if def.BitLength == 0 || int(def.BitLength) > width*8 {
			return fmt.Errorf("spn %v: bit length %v does not fit data type %v", def.SPN, def.BitLength, def.DataType)
		}
		if def.StartBit > 7 {
			return fmt.Errorf("spn %v: start bit %v is out of byte range", def.SPN, def.StartBit)
		}
		if def.StartBit != 0 && width != 1 {
			return fmt.Errorf("spn %v: multi-byte field can not have start bit %v", def.SPN, def.StartBit)
		}
		if existing, ok := seen[def.SPN]; ok {
			return fmt.Errorf("spn %v: duplicate definition %v, already defined as %v", def.SPN, def.Name, existing)
		}
		seen[def.SPN] = def.Name
	}
	return nil
}
