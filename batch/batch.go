// Package batch decompresses LZ11 files and directory trees: output-path
// derivation, the pass-through policy for unrecognized input, and concurrent
// per-file decoding. The core decode contract lives in the parent lz11
// package; everything here is caller-side plumbing around it.
package batch

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync/atomic"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/Arulo165/lz11"
	"github.com/Arulo165/lz11/logger"
)

// Ext is the input extension recognized during directory traversal.
const Ext = ".lz"

// DecExt is appended when the input name carries no .lz suffix to strip.
const DecExt = ".dec"

// OutputPath derives a decompressed file name from an input name: the .lz
// suffix is stripped (case-insensitive), any other name gets .dec appended.
func OutputPath(in string) string {
	if strings.EqualFold(filepath.Ext(in), Ext) {
		return in[:len(in)-len(Ext)]
	}

	return in + DecExt
}

// DecompressFile reads inPath, decompresses it and writes the result to
// outPath (empty means OutputPath(inPath)). Input without the 0x11 marker is
// written through unchanged with an advisory log line: such files may simply
// never have been compressed.
func DecompressFile(inPath, outPath string, opts *lz11.Options) error {
	log := logger.Logger()

	data, err := os.ReadFile(inPath)
	if err != nil {
		return errors.Wrapf(err, "read %s", inPath)
	}

	out, err := lz11.Decompress(data, opts)
	switch {
	case errors.Is(err, lz11.ErrUnrecognizedFormat):
		log.Warn().Str("file", inPath).Msg("no 0x11 marker, passing input through unchanged")
		out = data
	case err != nil:
		return errors.Wrapf(err, "decompress %s", inPath)
	}

	if outPath == "" {
		outPath = OutputPath(inPath)
	}
	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(err, "create output directory")
		}
	}
	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", outPath)
	}

	log.Info().
		Str("file", inPath).
		Str("dest", outPath).
		Int("in", len(data)).
		Int("out", len(out)).
		Msg("decompressed")

	return nil
}

// DecompressDir walks inDir recursively, decompressing every *.lz file into
// outDir with the relative layout preserved. Each file decodes independently,
// so up to jobs files run concurrently (jobs < 1 means GOMAXPROCS). Per-file
// failures are logged and skipped, never aborting the rest of the batch; the
// returned count is the number of files decompressed successfully. The
// context cancels files not yet started.
func DecompressDir(ctx context.Context, inDir, outDir string, jobs int, opts *lz11.Options) (int, error) {
	log := logger.Logger()

	var files []string
	err := filepath.WalkDir(inDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), Ext) {
			files = append(files, path)
		}

		return nil
	})
	if err != nil {
		return 0, errors.Wrapf(err, "scan %s", inDir)
	}

	if jobs < 1 {
		jobs = runtime.GOMAXPROCS(0)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	var done, failed atomic.Int64
	for _, path := range files {
		path := path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			rel, err := filepath.Rel(inDir, path)
			if err != nil {
				return errors.Wrapf(err, "relativize %s", path)
			}

			if err := DecompressFile(path, filepath.Join(outDir, OutputPath(rel)), opts); err != nil {
				failed.Add(1)
				log.Error().Err(err).Str("file", path).Msg("decompress failed")

				return nil
			}
			done.Add(1)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return int(done.Load()), err
	}

	log.Info().
		Int("files", len(files)).
		Int64("ok", done.Load()).
		Int64("failed", failed.Load()).
		Str("dest", outDir).
		Msg("batch complete")

	return int(done.Load()), nil
}
