package dashboard

import (
	"metabuild-hub/core/logger"
	"metabuild-hub/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ItemsResponse is the body of the dashboard items endpoint.
type ItemsResponse struct {
	Items    []reconcile.DisplayItem `json:"items"`
	Failures []reconcile.Failure     `json:"failures"`
	Error    string                  `json:"error,omitempty"`
}

// Handler handles HTTP requests for the dashboard.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the dashboard routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/dashboard")
	group.Get("/:principal/items", h.HandleItems)
}

// HandleItems returns the collectibles of a user.
// @Summary List Dashboard Items
// @Description Reconciles the user's collections and NFTs into display items. Collections that fail to load are listed in failures; the request still succeeds.
// @Tags dashboard
// @Produce json
// @Param principal path string true "User principal"
// @Success 200 {object} dashboard.ItemsResponse "Dashboard items"
// @Router /dashboard/{principal}/items [get]
func (h *Handler) HandleItems(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	principal := c.Params("principal")

	res := h.service.Items(c.UserContext(), principal)

	body := ItemsResponse{Items: res.Items, Failures: res.Failures}
	if res.Err != nil {
		l.Warn("Dashboard served without items", zap.String("principal", principal), zap.Error(res.Err))
		body.Error = res.Err.Error()
	}
	return c.JSON(body)
}
