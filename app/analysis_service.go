// Package app wires the loader, battery engine, and shaper into the named
// end-to-end analyses the CLI exposes.
package app

import (
	"context"

	"go.uber.org/zap"

	"statlab/adapters/loader"
	"statlab/adapters/stats/engine"
	"statlab/adapters/stats/gridfit"
	"statlab/adapters/shaper"
	"statlab/domain/dataset"
	"statlab/internal/errors"
)

// AnalysisService runs named analyses: load a file if one is configured,
// otherwise synthesize the analysis's fallback dataset, then run the
// battery and shape the page payload.
type AnalysisService struct {
	analyzer *engine.Analyzer
	seed     int64
	logger   *zap.Logger
}

// NewAnalysisService creates the service. A nil logger disables logging.
func NewAnalysisService(analyzer *engine.Analyzer, seed int64, logger *zap.Logger) *AnalysisService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalysisService{analyzer: analyzer, seed: seed, logger: logger}
}

// loadOrSynthesize reads the file at path when given, otherwise calls the
// fallback generator.
func (s *AnalysisService) loadOrSynthesize(path string, fallback func(*loader.Synthesizer) (*dataset.View, error)) (*dataset.View, error) {
	if path != "" {
		v, err := loader.NewReader(path, s.logger).Read()
		if err != nil {
			return nil, errors.WithCode(errors.CodeLoad, err)
		}
		return v, nil
	}
	s.logger.Debug("no input file, synthesizing", zap.Int64("seed", s.seed))
	return fallback(loader.NewSynthesizer(s.seed))
}

// FamiliarAnalysis reproduces the lifespan-and-iron page: a t-test of
// lifespan across packs plus a chi-square test of pack against iron level.
// Either path may be empty; the missing dataset is synthesized.
func (s *AnalysisService) FamiliarAnalysis(ctx context.Context, lifespanPath, ironPath string) (*shaper.FamiliarPage, error) {
	lifespans, err := s.loadOrSynthesize(lifespanPath, func(syn *loader.Synthesizer) (*dataset.View, error) {
		return syn.FamiliarLifespans(100)
	})
	if err != nil {
		return nil, err
	}
	iron, err := s.loadOrSynthesize(ironPath, func(syn *loader.Synthesizer) (*dataset.View, error) {
		return syn.FamiliarIron(300)
	})
	if err != nil {
		return nil, err
	}

	lifespanReport, err := s.analyzer.Run(ctx, lifespans, engine.Request{
		NumericColumn: "lifespan",
		GroupColumn:   "pack",
	})
	if err != nil {
		return nil, errors.WithCode(errors.CodeAnalysis, err)
	}
	ironReport, err := s.analyzer.Run(ctx, iron, engine.Request{
		FactorA: "pack",
		FactorB: "iron",
	})
	if err != nil {
		return nil, errors.WithCode(errors.CodeAnalysis, err)
	}

	page, err := shaper.ShapeFamiliar(lifespanReport, ironReport)
	if err != nil {
		return nil, errors.WithCode(errors.CodeShape, err)
	}
	return page, nil
}

// FetchmakerAnalysis reproduces the adoption-profile page: weight
// descriptives and mean comparison across breeds, plus a chi-square test of
// breed against the hypoallergenic flag.
func (s *AnalysisService) FetchmakerAnalysis(ctx context.Context, dogsPath string) (*shaper.FetchmakerPage, error) {
	dogs, err := s.loadOrSynthesize(dogsPath, func(syn *loader.Synthesizer) (*dataset.View, error) {
		return syn.Dogs(500)
	})
	if err != nil {
		return nil, err
	}

	report, err := s.analyzer.Run(ctx, dogs, engine.Request{
		NumericColumn: "weight",
		GroupColumn:   "breed",
		FactorA:       "breed",
		FactorB:       "is_hypoallergenic",
	})
	if err != nil {
		return nil, errors.WithCode(errors.CodeAnalysis, err)
	}

	page, err := shaper.ShapeFetchmaker(report)
	if err != nil {
		return nil, errors.WithCode(errors.CodeShape, err)
	}
	return page, nil
}

// RegressionAnalysis reproduces the line-fit page over two numeric columns
// of the given file, falling back to a synthesized yearly production trend.
func (s *AnalysisService) RegressionAnalysis(ctx context.Context, path, xColumn, yColumn string) (*shaper.RegressionPage, error) {
	v, err := s.loadOrSynthesize(path, func(syn *loader.Synthesizer) (*dataset.View, error) {
		return syn.Production(1998, 15)
	})
	if err != nil {
		return nil, err
	}
	if path == "" {
		xColumn, yColumn = "year", "total_production"
	}

	report, err := s.analyzer.Run(ctx, v, engine.Request{
		XColumn: xColumn,
		YColumn: yColumn,
	})
	if err != nil {
		return nil, errors.WithCode(errors.CodeAnalysis, err)
	}

	points, err := fitPoints(v, xColumn, yColumn)
	if err != nil {
		return nil, errors.WithCode(errors.CodeAnalysis, err)
	}
	page, err := shaper.ShapeRegression(report, points)
	if err != nil {
		return nil, errors.WithCode(errors.CodeShape, err)
	}
	return page, nil
}

func fitPoints(v *dataset.View, xColumn, yColumn string) ([]gridfit.Point, error) {
	xs, err := v.Float64Column(xColumn)
	if err != nil {
		return nil, err
	}
	ys, err := v.Float64Column(yColumn)
	if err != nil {
		return nil, err
	}
	points := make([]gridfit.Point, len(xs))
	for i := range xs {
		points[i] = gridfit.Point{X: xs[i], Y: ys[i]}
	}
	return points, nil
}
