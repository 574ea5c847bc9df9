package main

import (
	"fmt"
	"strconv"

	"github.com/aldas/go-j1939-client"
	"github.com/spf13/cobra"
)

var requestCommand = &cobra.Command{
	Use:   "request <source> <destination> <pgn>",
	Short: "build Request PGN (0xEA00) frame asking destination to transmit given PGN",
	Long: `request prints the frame, in candump ID#HEXDATA notation, that asks the
destination node to transmit given PGN. Addresses and PGN accept decimal or
0x prefixed hex. Use 0xFF destination to request from all nodes.

Example: request 0xFE 0x00 65253`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := parseAddress(args[0])
		if err != nil {
			return err
		}
		destination, err := parseAddress(args[1])
		if err != nil {
			return err
		}
		pgn, err := strconv.ParseUint(args[2], 0, 32)
		if err != nil {
			return fmt.Errorf("invalid PGN: %v", args[2])
		}

		canID, data := j1939.BuildRequest(source, destination, uint32(pgn))
		fmt.Printf("%08X#%02X%02X%02X\n", canID, data[0], data[1], data[2])
		return nil
	},
}

func parseAddress(raw string) (uint8, error) {
	v, err := strconv.ParseUint(raw, 0, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid address: %v", raw)
	}
	return uint8(v), nil
}
