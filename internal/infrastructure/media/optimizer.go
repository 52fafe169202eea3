// Package media shrinks uploaded images and PDFs before they are stored.
//
// Optimization never fails the caller: when a file cannot be processed the
// original bytes come back marked as degraded.
package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"sync"

	"travel_backoffice/internal/config"
	"travel_backoffice/internal/usecase/interfaces"

	"github.com/disintegration/imaging"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"go.uber.org/zap"
)

var ErrEmptyInput = errors.New("empty input")

var disableConfigDir sync.Once

type Optimizer struct {
	maxWidth int
	quality  int
	logger   *zap.Logger
}

var _ interfaces.IMediaOptimizer = (*Optimizer)(nil)

func NewOptimizer(cfg config.MediaConfig, logger *zap.Logger) *Optimizer {
	// pdfcpu would otherwise create a config dir under the user's home.
	disableConfigDir.Do(api.DisableConfigDir)

	maxWidth := cfg.ImageMaxWidth
	if maxWidth <= 0 {
		maxWidth = 1200
	}
	quality := cfg.ImageQuality
	if quality < 1 || quality > 100 {
		quality = 80
	}
	return &Optimizer{maxWidth: maxWidth, quality: quality, logger: logger}
}

// OptimizeImage fits the image into maxWidth (never enlarging it) and re-encodes
// it as JPEG. Transparent areas are flattened onto white.
func (o *Optimizer) OptimizeImage(ctx context.Context, data []byte) interfaces.OptimizeResult {
	out, err := o.optimizeImage(ctx, data)
	if err != nil {
		o.logger.Warn("[media][image] optimization skipped, keeping original",
			zap.Int("size", len(data)),
			zap.Error(err),
		)
		return degraded(data, err)
	}
	o.logger.Debug("[media][image] optimized",
		zap.Int("original_size", len(data)),
		zap.Int("optimized_size", len(out)),
	)
	return interfaces.OptimizeResult{Data: out}
}

func (o *Optimizer) optimizeImage(ctx context.Context, data []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	if img.Bounds().Dx() > o.maxWidth {
		img = imaging.Resize(img, o.maxWidth, 0, imaging.Lanczos)
	}

	b := img.Bounds()
	flat := imaging.New(b.Dx(), b.Dy(), color.White)
	flat = imaging.Overlay(flat, img, image.Pt(0, 0), 1.0)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, flat, imaging.JPEG, imaging.JPEGQuality(o.quality)); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

// OptimizePdf rewrites the document with object and xref streams, dropping
// duplicate and unused objects.
func (o *Optimizer) OptimizePdf(ctx context.Context, data []byte) interfaces.OptimizeResult {
	out, err := o.optimizePdf(ctx, data)
	if err != nil {
		o.logger.Warn("[media][pdf] optimization skipped, keeping original",
			zap.Int("size", len(data)),
			zap.Error(err),
		)
		return degraded(data, err)
	}
	o.logger.Debug("[media][pdf] optimized",
		zap.Int("original_size", len(data)),
		zap.Int("optimized_size", len(out)),
	)
	return interfaces.OptimizeResult{Data: out}
}

func (o *Optimizer) optimizePdf(ctx context.Context, data []byte) (out []byte, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}

	// pdfcpu may panic on badly broken input.
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, fmt.Errorf("optimize pdf: %v", r)
		}
	}()

	conf := model.NewDefaultConfiguration()
	conf.WriteObjectStream = true
	conf.WriteXRefStream = true
	conf.ValidationMode = model.ValidationRelaxed

	var buf bytes.Buffer
	if err := api.Optimize(bytes.NewReader(data), &buf, conf); err != nil {
		return nil, fmt.Errorf("optimize pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func degraded(data []byte, err error) interfaces.OptimizeResult {
	return interfaces.OptimizeResult{Data: data, Degraded: true, Err: err}
}
