// Package pipeline orchestrates the conversion workflow stages.
package pipeline

import (
	"context"
	"fmt"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/rom2msx/internal/detector"
	"github.com/retroenv/rom2msx/internal/layout"
	"github.com/retroenv/rom2msx/internal/loader"
	"github.com/retroenv/rom2msx/internal/options"
	"github.com/retroenv/rom2msx/internal/verification"
	"github.com/retroenv/rom2msx/internal/writer"
)

// Pipeline orchestrates the complete conversion workflow.
type Pipeline struct {
	logger   *log.Logger
	detector *detector.Detector
	loader   *loader.Loader
	writer   *writer.Writer
}

// New creates a new conversion pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger:   logger,
		detector: detector.New(logger),
		loader:   loader.New(),
		writer:   writer.New(),
	}
}

// Execute runs the complete conversion pipeline from the input file to the output file.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, layoutOpts options.Layout) (*layout.Image, error) {
	rom, err := p.loader.Load(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("loading ROM: %w", err)
	}

	return p.ExecuteWithROM(ctx, rom, opts, layoutOpts)
}

// ExecuteWithROM runs the conversion pipeline with a pre-loaded ROM.
// The output file is only written after the layout completed without error.
func (p *Pipeline) ExecuteWithROM(ctx context.Context, rom []byte, opts options.Program,
	layoutOpts options.Layout) (*layout.Image, error) {

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p.detector.Detect(rom, opts.Input)

	if layoutOpts.StartHint != layout.NoStartHint && !layoutOpts.Mapper.SupportsStartHint() {
		p.logger.Warn("Start bank is only used for Simple64K, ignoring it",
			log.Stringer("type", layoutOpts.Mapper),
			log.Int("addr", layoutOpts.StartHint))
	}

	img, err := layout.Convert(rom, layoutOpts.Chip, layoutOpts.Mapper, layoutOpts.StartHint)
	if err != nil {
		return nil, fmt.Errorf("converting '%s': %w", opts.Input, err)
	}

	if err := p.writer.Write(opts.Output, img.Data); err != nil {
		return nil, fmt.Errorf("writing image: %w", err)
	}

	if opts.Verify {
		if err := verification.VerifyOutput(ctx, p.logger, opts.Output, img); err != nil {
			return nil, fmt.Errorf("verification failed: %w", err)
		}
	}

	p.printInfo(opts, img)
	return img, nil
}

// printInfo prints the conversion report.
func (p *Pipeline) printInfo(opts options.Program, img *layout.Image) {
	if opts.Quiet {
		return
	}

	verify := "skipped"
	if opts.Verify {
		verify = "OK"
	}

	p.logger.Info("Image written",
		log.String("file", opts.Output),
		log.Stringer("type", img.Mapper),
		log.Stringer("chip", img.Chip),
		log.String("part", img.Chip.Part()),
		log.Int("banks", img.BankCount),
		log.Int("start_bank", img.StartBank),
		log.String("bank_size", "8 KiB"),
		log.String("verify", verify),
	)
}
