package drift

import (
	"wiring-guard/feature/drift/checks"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Feature exposes the drift check over HTTP.
type Feature struct {
	service *Service
}

// NewFeature creates the drift feature for the repository rooted at fs.
func NewFeature(fs afero.Fs, logger *zap.Logger) *Feature {
	return &Feature{service: NewService(fs, checks.DefaultLayout(), logger)}
}

// Name returns the feature name.
func (f *Feature) Name() string {
	return "drift"
}

// IsEnabled reports whether the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the drift routes.
func (f *Feature) Load(app fiber.Router) error {
	NewHandler(f.service).RegisterRoutes(app)
	return nil
}
