package drift

import (
	"context"
	"errors"
	"fmt"
	"io"

	"wiring-guard/feature/drift/checks"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// ErrDriftDetected is returned by commands when at least one asset is unreferenced.
var ErrDriftDetected = errors.New("unreferenced assets detected")

// Service runs drift checks against a filesystem.
type Service struct {
	fs     afero.Fs
	layout checks.Layout
	logger *zap.Logger
}

// NewService creates a new drift service.
func NewService(fs afero.Fs, layout checks.Layout, logger *zap.Logger) *Service {
	return &Service{
		fs:     fs,
		layout: layout,
		logger: logger,
	}
}

// Layout returns the layout the service checks.
func (s *Service) Layout() checks.Layout {
	return s.layout
}

// Check runs the full check over every asset category.
func (s *Service) Check(ctx context.Context) (*checks.Report, error) {
	return s.run(ctx, s.layout)
}

// CheckKind runs the check for a single asset category ("template" or "static file").
func (s *Service) CheckKind(ctx context.Context, kind string) (*checks.Report, error) {
	layout := s.layout.Only(kind)
	if len(layout.Categories) == 0 {
		return nil, fmt.Errorf("unknown asset kind %q", kind)
	}
	return s.run(ctx, layout)
}

func (s *Service) run(ctx context.Context, layout checks.Layout) (*checks.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.logger.Debug("Checking asset wiring", zap.String("source", layout.Source))
	report, err := checks.Run(s.fs, layout)
	if err != nil {
		return nil, err
	}

	if report.OK() {
		s.logger.Info("All assets are wired", zap.Any("checked", report.Checked))
	} else {
		s.logger.Warn("Unreferenced assets detected",
			zap.Int("missing", len(report.Violations)),
			zap.Any("checked", report.Checked),
		)
	}

	return report, nil
}

// WriteDiagnostics prints one line per violation to w.
func WriteDiagnostics(w io.Writer, report *checks.Report) error {
	for _, line := range report.Lines() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
