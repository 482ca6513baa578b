// The lz11 command decompresses LZ11 (0x11-marked) files.
//
// A file argument decodes to a sibling file with the .lz suffix stripped
// (or .dec appended); a directory argument is walked recursively and every
// *.lz file inside decodes into the output directory with the relative
// layout preserved.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Arulo165/lz11"
	"github.com/Arulo165/lz11/batch"
	"github.com/Arulo165/lz11/logger"
)

var (
	fOutput  string
	fJobs    int
	fQuiet   bool
	fLenient bool
)

var rootCmd = &cobra.Command{
	Use:   "lz11 <file-or-directory>...",
	Short: "decompress LZ11-compressed files and folders",
	Long: `lz11 decompresses files in the LZ11 variant of LZ77/LZSS (streams
starting with the 0x11 marker byte), as used by handheld-console asset
pipelines. Files without the marker are passed through unchanged.`,
	Args:         cobra.MinimumNArgs(1),
	RunE:         run,
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringVarP(&fOutput, "output", "o", "", "output file or directory (default: input with .lz stripped, or <dir>.dec)")
	rootCmd.Flags().IntVarP(&fJobs, "jobs", "j", 0, "max concurrent decodes within a directory (default: number of CPUs)")
	rootCmd.Flags().BoolVarP(&fQuiet, "quiet", "q", false, "disable log output")
	rootCmd.Flags().BoolVar(&fLenient, "lenient", false, "accept truncated streams silently, keeping the partial output")
}

func run(cmd *cobra.Command, args []string) error {
	if fQuiet {
		logger.Disable()
	}
	if fOutput != "" && len(args) > 1 {
		return fmt.Errorf("--output cannot be combined with multiple inputs")
	}

	opts := lz11.DefaultOptions()
	if fLenient {
		opts = lz11.LenientOptions()
	}

	log := logger.Logger()
	failures := 0

	for _, path := range args {
		info, err := os.Stat(path)
		if err != nil {
			log.Error().Err(err).Str("path", path).Msg("cannot stat input")
			failures++

			continue
		}

		if info.IsDir() {
			outDir := fOutput
			if outDir == "" {
				outDir = filepath.Base(filepath.Clean(path)) + batch.DecExt
			}

			if _, err := batch.DecompressDir(cmd.Context(), path, outDir, fJobs, opts); err != nil {
				log.Error().Err(err).Str("path", path).Msg("batch aborted")
				failures++
			}

			continue
		}

		if err := batch.DecompressFile(path, fOutput, opts); err != nil {
			log.Error().Err(err).Str("path", path).Msg("decompress failed")
			failures++
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d inputs failed", failures, len(args))
	}

	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
