package drift

import (
	"wiring-guard/core/logger"
	"wiring-guard/feature/drift/checks"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for drift checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the drift routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/drift")
	group.Get("/", h.HandleDriftCheck)
	group.Get("/templates", h.HandleTemplateCheck)
	group.Get("/static", h.HandleStaticCheck)
}

// HandleDriftCheck runs the check over templates and static files.
// @Summary Run Drift Check
// @Description Reports every template and static file not referenced by the server source.
// @Tags drift
// @Produce json
// @Success 200 {object} map[string]interface{} "Drift Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /drift [get]
func (h *Handler) HandleDriftCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Starting drift check")

	report, err := h.service.Check(c.Context())
	if err != nil {
		l.Error("Drift check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(reportBody(report))
}

// HandleTemplateCheck runs the check over templates only.
// @Summary Check Templates
// @Description Reports every template not referenced by the server source.
// @Tags drift
// @Produce json
// @Success 200 {object} map[string]interface{} "Template Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /drift/templates [get]
func (h *Handler) HandleTemplateCheck(c *fiber.Ctx) error {
	return h.handleKind(c, checks.KindTemplate)
}

// HandleStaticCheck runs the check over static files only.
// @Summary Check Static Files
// @Description Reports every static file not referenced by the server source.
// @Tags drift
// @Produce json
// @Success 200 {object} map[string]interface{} "Static Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /drift/static [get]
func (h *Handler) HandleStaticCheck(c *fiber.Ctx) error {
	return h.handleKind(c, checks.KindStatic)
}

func (h *Handler) handleKind(c *fiber.Ctx, kind string) error {
	l := logger.WithRayID(h.service.logger, c).With(zap.String("kind", kind))

	report, err := h.service.CheckKind(c.Context(), kind)
	if err != nil {
		l.Error("Drift check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(reportBody(report))
}

func reportBody(report *checks.Report) fiber.Map {
	status := "ok"
	if !report.OK() {
		status = "drift"
	}
	return fiber.Map{
		"status":  status,
		"source":  report.Source,
		"checked": report.Checked,
		"missing": report.Lines(),
	}
}
