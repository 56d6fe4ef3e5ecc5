package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"strn/internal/enumgen"
)

var enumgenCmd = &cobra.Command{
	Use:   "enumgen [flags] NAME...",
	Short: "Generate Go constants whose values spell their names",
	Long: `Enumgen writes a Go file declaring an integer enum type with one constant per
NAME. Each value is the inline string encoding of its name, so names longer
than the width allows are rejected.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEnumgen,
}

func init() {
	enumgenCmd.Flags().String("type", "", "enum type name (required)")
	enumgenCmd.Flags().String("package", "", "package clause of the generated file (required)")
	enumgenCmd.Flags().Int("width", 64, "string width in bits (32|56|64; default from strn.toml)")
	enumgenCmd.Flags().String("import", "strn", "import path of the strn package")
	enumgenCmd.Flags().StringP("output", "o", "", "output file (default stdout)")
	_ = enumgenCmd.MarkFlagRequired("type")
	_ = enumgenCmd.MarkFlagRequired("package")
}

func runEnumgen(cmd *cobra.Command, args []string) error {
	width, err := resolveWidth(cmd)
	if err != nil {
		return err
	}
	opts := enumgen.Options{Width: width, Names: args}
	if opts.Type, err = cmd.Flags().GetString("type"); err != nil {
		return fmt.Errorf("failed to get type flag: %w", err)
	}
	if opts.Package, err = cmd.Flags().GetString("package"); err != nil {
		return fmt.Errorf("failed to get package flag: %w", err)
	}
	if opts.Import, err = cmd.Flags().GetString("import"); err != nil {
		return fmt.Errorf("failed to get import flag: %w", err)
	}
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("failed to get output flag: %w", err)
	}

	src, err := enumgen.Generate(opts)
	if err != nil {
		return err
	}
	if output == "" {
		_, err = os.Stdout.Write(src)
		return err
	}
	if err := os.WriteFile(output, src, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}
	notef("wrote %d constants to %s\n", len(args), output)
	return nil
}
