package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "j1939dump",
	Short: "j1939dump decodes SAE J1939 CAN frames into named engineering values",
	Long: `j1939dump works on frames given as arguments or replayed from candump log
files. It knows the common engine/generator PGNs out of the box and can be
extended with additional SPN definitions from a TOML file.`,
}

func main() {
	rootCmd.AddCommand(decodeCommand, requestCommand, pgnsCommand)
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
