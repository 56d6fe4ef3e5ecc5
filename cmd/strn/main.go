package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"strn/internal/version"
)

var rootCmd = &cobra.Command{
	Use:               "strn",
	Short:             "Inline fixed-capacity strings and a lazy tokenizer",
	Long:              `strn packs short strings into 32- and 64-bit integers and splits text into tokens`,
	SilenceUsage:      true,
	PersistentPreRunE: openSession,
}

func main() {
	rootCmd.Version = version.String()

	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(dictCmd)
	rootCmd.AddCommand(enumgenCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	pf := rootCmd.PersistentFlags()
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.Bool("quiet", false, "suppress non-essential output")
	pf.Bool("timings", false, "show timing information")
	pf.String("config", "", "path to strn.toml (default: nearest one above the working directory)")

	pf.String("trace", "", "trace output file (- for stderr)")
	pf.String("trace-level", "off", "trace level (off|error|command|file|debug)")
	pf.String("trace-mode", "stream", "trace storage (stream|ring|both)")
	pf.String("trace-format", "auto", "trace format (auto|text|ndjson)")
	pf.Int("trace-ring-size", 1024, "events kept in ring mode")

	pf.String("cpu-profile", "", "write a CPU profile to file")
	pf.String("mem-profile", "", "write a heap profile to file on exit")
	pf.String("runtime-trace", "", "write a Go runtime trace to file")

	err := rootCmd.ExecuteContext(context.Background())
	closeSession(err)
	if err != nil {
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
