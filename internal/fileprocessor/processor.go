// Package fileprocessor handles file selection and batch processing operations
package fileprocessor

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"sync/atomic"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/rom2msx/internal/options"
	"github.com/retroenv/rom2msx/internal/pipeline"
	"golang.org/x/sync/errgroup"
)

const outputExtension = ".bin"

// ProcessFile handles the complete file processing workflow
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program, layoutOpts options.Layout) error {
	pipe := pipeline.New(logger)

	if _, err := pipe.Execute(ctx, opts, layoutOpts); err != nil {
		return fmt.Errorf("processing '%s': %w", opts.Input, err)
	}
	return nil
}

// ProcessFiles converts all files, running up to opts.Jobs conversions in parallel.
// A failing file does not stop the other conversions, the returned error
// reports the number of failed files. Cancelling the context stops pending files.
// Nothing is converted if two files would be written to the same output.
func ProcessFiles(ctx context.Context, logger *log.Logger, opts options.Program,
	layoutOpts options.Layout, files []string) error {

	outputs, err := outputFilenames(opts, files)
	if err != nil {
		return err
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	var g errgroup.Group
	g.SetLimit(jobs)

	var failed atomic.Int64
	for i, file := range files {
		fileOpts := opts
		fileOpts.Input = file
		fileOpts.Output = outputs[i]

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			err := ProcessFile(ctx, logger, fileOpts, layoutOpts)
			switch {
			case err == nil:
				return nil
			case errors.Is(err, context.Canceled):
				return err
			default:
				failed.Add(1)
				logger.Error("Conversion failed", log.String("file", file), log.Err(err))
				return nil
			}
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	if n := failed.Load(); n > 0 {
		return fmt.Errorf("%d of %d files failed", n, len(files))
	}
	return nil
}

// outputFilenames returns the output file for every input file. In batch mode
// an output that is shared by two files or that overwrites another input is an
// error. Names are compared case-insensitive to also cover case-insensitive
// file systems.
func outputFilenames(opts options.Program, files []string) ([]string, error) {
	if len(files) == 1 {
		output := opts.Output
		if output == "" {
			output = GenerateOutputFilename(files[0])
		}
		return []string{output}, nil
	}

	inputs := make(map[string]string, len(files))
	for _, file := range files {
		inputs[fileKey(file)] = file
	}

	written := make(map[string]string, len(files))
	outputs := make([]string, len(files))
	for i, file := range files {
		output := GenerateOutputFilename(file)
		key := fileKey(output)

		if other, ok := written[key]; ok {
			return nil, fmt.Errorf("input files '%s' and '%s' map to the same output file '%s'", other, file, output)
		}
		if other, ok := inputs[key]; ok {
			return nil, fmt.Errorf("output file '%s' of '%s' would overwrite input file '%s'", output, file, other)
		}
		written[key] = file
		outputs[i] = output
	}
	return outputs, nil
}

func fileKey(path string) string {
	return strings.ToLower(filepath.Clean(path))
}

// GetFilesToProcess returns list of files to process based on options
func GetFilesToProcess(opts *options.Program) ([]string, error) {
	if opts.Batch != "" {
		matches, err := filepath.Glob(opts.Batch)
		if err != nil {
			return nil, fmt.Errorf("globbing batch pattern: %w", err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match batch pattern '%s'", opts.Batch)
		}
		return matches, nil
	}
	return []string{opts.Input}, nil
}

// GenerateOutputFilename generates output filename for a given input file.
// An input that already has the output extension gets a .msx infix to not
// overwrite it.
func GenerateOutputFilename(inputFile string) string {
	ext := filepath.Ext(inputFile)
	base := inputFile[:len(inputFile)-len(ext)]
	if strings.EqualFold(ext, outputExtension) {
		return base + ".msx" + outputExtension
	}
	return base + outputExtension
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	versionString := version
	if commit != "" {
		if len(commit) > 7 {
			commit = commit[:7]
		}
		versionString += fmt.Sprintf(" (%s)", commit)
	}

	logger.Info("rom2msx", log.String("version", versionString))

	if date != "" && !strings.Contains(date, "unknown") {
		logger.Info("Build", log.String("date", date))
	}
}
