package main

import (
	"fmt"

	"github.com/aldas/go-j1939-client/spndb"
	"github.com/spf13/cobra"
)

var pgnsCommand = &cobra.Command{
	Use:   "pgns",
	Short: "list PGNs known to the built-in SPN database",
	Run: func(cmd *cobra.Command, args []string) {
		db := spndb.Default()
		for _, pgn := range db.PGNs() {
			defs, _ := db.DefinitionsForPGN(pgn)
			fmt.Printf("%6d (0x%05X): %d SPNs\n", pgn, pgn, len(defs))
		}
		pgnCount, spnCount := db.Stats()
		fmt.Printf("total: %d PGNs, %d SPNs\n", pgnCount, spnCount)
	},
}
