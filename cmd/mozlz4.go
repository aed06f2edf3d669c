package cmd

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/foxtheme/cli/internal/mozlz4"
	"github.com/foxtheme/cli/pkg/util"
)

var mozlz4Cmd = &cobra.Command{
	Use:   "mozlz4",
	Short: "Work with mozLz4-compressed files",
	Long: `Compress and decompress files in the mozLz4 container format Firefox
uses for compressed profile state (addonStartup.json.lz4, search.json.mozlz4,
and friends). This is not the standard LZ4 frame format.`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

var mozlz4CompressCmd = &cobra.Command{
	Use:   "compress <src> <dest>",
	Short: "Compress a file into a mozLz4 container",
	Args:  cobra.ExactArgs(2),
	RunE:  runMozlz4Compress,
}

var mozlz4DecompressCmd = &cobra.Command{
	Use:   "decompress <src> <dest>",
	Short: "Decompress a mozLz4 container",
	Args:  cobra.ExactArgs(2),
	RunE:  runMozlz4Decompress,
}

func init() {
	mozlz4Cmd.AddCommand(mozlz4CompressCmd)
	mozlz4Cmd.AddCommand(mozlz4DecompressCmd)
}

func runMozlz4Compress(cmd *cobra.Command, args []string) error {
	src, dest := args[0], args[1]

	raw, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", src, err)
	}
	container, err := mozlz4.Encode(raw)
	if err != nil {
		return fmt.Errorf("failed to compress %s: %w", src, err)
	}
	if err := util.WriteFileAtomic(dest, container, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", dest, err)
	}

	pterm.Success.Printf("Compressed %s (%d bytes) to %s (%d bytes)\n",
		src, len(raw), dest, len(container))
	return nil
}

func runMozlz4Decompress(cmd *cobra.Command, args []string) error {
	src, dest := args[0], args[1]

	container, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", src, err)
	}
	raw, err := mozlz4.Decode(container)
	if err != nil {
		return fmt.Errorf("failed to decompress %s: %w", src, err)
	}
	if err := util.WriteFileAtomic(dest, raw, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", dest, err)
	}

	pterm.Success.Printf("Decompressed %s (%d bytes) to %s (%d bytes)\n",
		src, len(container), dest, len(raw))
	return nil
}
