package main

import (
	"bufio"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/aldas/go-j1939-client"
	"github.com/aldas/go-j1939-client/internal/logger"
	"github.com/aldas/go-j1939-client/spndb"
	"github.com/spf13/cobra"
)

var (
	decodeFile    string
	decodeDefs    string
	decodeFilter  []uint
	decodeFormat  string
	decodeVerbose bool
)

func init() {
	decodeCommand.Flags().StringVarP(&decodeFile, "file", "f", "", "candump log file to decode, empty or '-' reads stdin")
	decodeCommand.Flags().StringVar(&decodeDefs, "defs", "", "TOML file with additional SPN definitions")
	decodeCommand.Flags().UintSliceVar(&decodeFilter, "filter", nil, "comma separated list of PGNs to decode")
	decodeCommand.Flags().StringVarP(&decodeFormat, "output-format", "o", "text", "output format (text, json)")
	decodeCommand.Flags().BoolVarP(&decodeVerbose, "verbose", "v", false, "log skipped input lines")
}

var decodeCommand = &cobra.Command{
	Use:   "decode [ID#HEXDATA ...]",
	Short: "decode frames into SPN values",
	Long: `decode decodes J1939 frames into named engineering values. Frames are given
either as ID#HEXDATA arguments (candump notation, for example
0CF00400#0000002E4E000000) or replayed from a candump -L style log file.`,
	RunE: runDecode,
}

type logFrame struct {
	CanID uint32
	Data  []byte
}

func runDecode(cmd *cobra.Command, args []string) error {
	level := slog.LevelWarn
	if decodeVerbose {
		level = slog.LevelInfo
	}
	log := logger.New(level)

	switch decodeFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unknown output format: %v", decodeFormat)
	}

	db := spndb.Default()
	if decodeDefs != "" {
		extra, err := spndb.LoadDefinitions(os.DirFS("."), decodeDefs)
		if err != nil {
			return err
		}
		merged := append(append([]j1939.SPNDef{}, spndb.Definitions...), extra...)
		if err := spndb.Validate(merged); err != nil {
			return fmt.Errorf("additional definitions conflict with built-in catalog: %w", err)
		}
		db = spndb.NewDatabase(merged)
		log.Info("loaded additional spn definitions", "path", decodeDefs, "count", len(extra))
	}
	decoder := spndb.NewDecoder(db)

	filter := make(map[uint32]struct{}, len(decodeFilter))
	for _, pgn := range decodeFilter {
		filter[uint32(pgn)] = struct{}{}
	}

	if len(args) > 0 {
		for _, arg := range args {
			frame, err := parseFrame(arg)
			if err != nil {
				return err
			}
			outputFrame(decoder, filter, frame)
		}
		return nil
	}

	input := os.Stdin
	if decodeFile != "" && decodeFile != "-" {
		f, err := os.Open(decodeFile)
		if err != nil {
			return err
		}
		defer f.Close()
		input = f
	}

	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		frame, err := parseCandumpLine(line)
		if err != nil {
			log.Warn("skipping line", "line", line, "error", err)
			continue
		}
		outputFrame(decoder, filter, frame)
	}
	return scanner.Err()
}

// parseCandumpLine parses single line of candump -L log, for example
// `(1639999999.123456) can0 0CF00400#0011223344556677`. Only the last field
// matters, timestamp and interface name are ignored.
func parseCandumpLine(line string) (logFrame, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return logFrame{}, fmt.Errorf("empty line")
	}
	return parseFrame(fields[len(fields)-1])
}

// parseFrame parses `ID#HEXDATA` frame notation.
func parseFrame(raw string) (logFrame, error) {
	idRaw, dataRaw, found := strings.Cut(raw, "#")
	if !found {
		return logFrame{}, fmt.Errorf("frame is missing '#' separator: %v", raw)
	}
	canID, err := strconv.ParseUint(idRaw, 16, 32)
	if err != nil {
		return logFrame{}, fmt.Errorf("invalid CAN ID: %v", idRaw)
	}
	if !j1939.IsValidCANID(uint32(canID)) {
		return logFrame{}, fmt.Errorf("CAN ID does not fit into 29 bits: %v", idRaw)
	}
	data, err := hex.DecodeString(dataRaw)
	if err != nil {
		return logFrame{}, fmt.Errorf("invalid frame data: %v", dataRaw)
	}
	if len(data) > j1939.MaxFrameDataLength {
		return logFrame{}, fmt.Errorf("frame data is longer than %v bytes", j1939.MaxFrameDataLength)
	}
	return logFrame{CanID: uint32(canID), Data: data}, nil
}

type decodedFrame struct {
	Header j1939.CanBusHeader `json:"header"`
	SPNs   []j1939.DecodedSPN `json:"spns"`
}

func outputFrame(decoder *spndb.Decoder, filter map[uint32]struct{}, frame logFrame) {
	header := j1939.ParseCANID(frame.CanID)
	if len(filter) > 0 {
		if _, ok := filter[header.PGN]; !ok {
			return
		}
	}
	decoded := decoder.DecodeFrame(frame.CanID, frame.Data)

	if decodeFormat == "json" {
		b, err := json.Marshal(decodedFrame{Header: header, SPNs: decoded})
		if err != nil {
			return
		}
		fmt.Println(string(b))
		return
	}
	fmt.Printf("PGN %v (source 0x%02X, priority %v)\n", header.PGN, header.Source, header.Priority)
	for _, spn := range decoded {
		fmt.Printf("  %v (SPN %v): %v %v\n", spn.Name, spn.SPN, spn.Value, spn.Unit)
	}
}
