package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"strn"
	"strn/internal/dict"
	"strn/internal/trace"
)

var errKeyNotFound = errors.New("key not found")

var dictCmd = &cobra.Command{
	Use:   "dict",
	Short: "Manage the String64-keyed dictionary",
	Long: `Dict stores string values under keys of at most eight bytes. Keys are
compared as integers, so list order is not alphabetical.`,
}

var dictPutCmd = &cobra.Command{
	Use:   "put KEY VALUE",
	Short: "Store VALUE under KEY",
	Args:  cobra.ExactArgs(2),
	RunE:  runDictPut,
}

var dictGetCmd = &cobra.Command{
	Use:   "get KEY",
	Short: "Print the value stored under KEY",
	Args:  cobra.ExactArgs(1),
	RunE:  runDictGet,
}

var dictDelCmd = &cobra.Command{
	Use:   "del KEY...",
	Short: "Remove keys",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDictDel,
}

var dictListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all entries in key order",
	Args:  cobra.NoArgs,
	RunE:  runDictList,
}

func init() {
	dictCmd.PersistentFlags().String("file", "", "dictionary file (default: [dict].path or the user cache dir)")
	dictPutCmd.Flags().Bool("truncate", false, "accept keys longer than 8 bytes by truncating them")
	dictListCmd.Flags().String("format", "pretty", "output format (pretty|json)")

	dictCmd.AddCommand(dictPutCmd, dictGetCmd, dictDelCmd, dictListCmd)
}

func dictPath(cmd *cobra.Command) (string, error) {
	path, err := cmd.Flags().GetString("file")
	if err != nil {
		return "", fmt.Errorf("failed to get file flag: %w", err)
	}
	if path == "" {
		path = current.cfg.Dict.Path
	}
	if path == "" {
		return dict.DefaultPath()
	}
	return path, nil
}

func openDict(cmd *cobra.Command) (*dict.Dict, string, error) {
	path, err := dictPath(cmd)
	if err != nil {
		return nil, "", err
	}
	span := trace.Begin(trace.FromContext(cmd.Context()), trace.ScopeFile, "dict.load", trace.CurrentSpan(cmd.Context()))
	d, err := dict.Load(path)
	if err != nil {
		span.End("error")
		return nil, "", fmt.Errorf("failed to load dictionary: %w", err)
	}
	span.WithExtra("entries", fmt.Sprint(d.Len())).End(path)
	return d, path, nil
}

func runDictPut(cmd *cobra.Command, args []string) error {
	d, path, err := openDict(cmd)
	if err != nil {
		return err
	}
	truncate, err := cmd.Flags().GetBool("truncate")
	if err != nil {
		return fmt.Errorf("failed to get truncate flag: %w", err)
	}

	key, value := args[0], args[1]
	var k strn.String64
	if truncate {
		k = strn.New64(key)
		d.Put(k, value)
	} else if k, err = d.PutExact(key, value); err != nil {
		return fmt.Errorf("%w (use --truncate to keep the first 8 bytes)", err)
	}
	if err := d.Save(path); err != nil {
		return fmt.Errorf("failed to save dictionary: %w", err)
	}
	notef("stored %q (%#x)\n", k.String(), k.Uint())
	return nil
}

func runDictGet(cmd *cobra.Command, args []string) error {
	d, _, err := openDict(cmd)
	if err != nil {
		return err
	}
	v, ok := d.Get(strn.New64(args[0]))
	if !ok {
		return fmt.Errorf("%w: %q", errKeyNotFound, args[0])
	}
	fmt.Fprintln(os.Stdout, v)
	return nil
}

func runDictDel(cmd *cobra.Command, args []string) error {
	d, path, err := openDict(cmd)
	if err != nil {
		return err
	}
	removed := 0
	for _, key := range args {
		if d.Delete(strn.New64(key)) {
			removed++
		} else {
			notef("%s %q not present\n", warnColor.Sprint("warning:"), key)
		}
	}
	if removed == 0 {
		return nil
	}
	if err := d.Save(path); err != nil {
		return fmt.Errorf("failed to save dictionary: %w", err)
	}
	notef("removed %d keys\n", removed)
	return nil
}

type dictListEntry struct {
	Key   string `json:"key"`
	Hex   string `json:"hex"`
	Value string `json:"value"`
}

func runDictList(cmd *cobra.Command, _ []string) error {
	d, _, err := openDict(cmd)
	if err != nil {
		return err
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	entries := d.Entries()
	switch format {
	case "json":
		out := make([]dictListEntry, len(entries))
		for i, e := range entries {
			out[i] = dictListEntry{Key: e.Key.String(), Hex: fmt.Sprintf("0x%016x", e.Key.Uint()), Value: e.Value}
		}
		return writeJSON(os.Stdout, out)
	case "pretty":
		for _, e := range entries {
			fmt.Fprintf(os.Stdout, "%s  %-10q %s\n", hexColor.Sprintf("0x%016x", e.Key.Uint()), e.Key.String(), e.Value)
		}
		return nil
	}
	return fmt.Errorf("unknown format: %s", format)
}
