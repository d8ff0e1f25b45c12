package minting

import (
	"errors"

	"metabuild-hub/core/logger"
	"metabuild-hub/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CallerHeader carries the principal of the user creating the fair.
const CallerHeader = "X-Caller-Principal"

// Handler handles HTTP requests for fair creation.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the minting routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/fairs", h.HandleCreateFair)
}

// HandleCreateFair creates a virtual fair and mints its NFT.
// @Summary Create Virtual Fair
// @Description Uploads the fair media, creates the fair collection and mints its NFT to the caller.
// @Tags minting
// @Accept multipart/form-data
// @Produce json
// @Param X-Caller-Principal header string true "Caller principal"
// @Param fairName formData string true "Fair name"
// @Param organizerName formData string false "Organizer name"
// @Param sector formData string false "Sector" default(Fintech)
// @Param subSector formData string false "Sub-sector" default(Digital banking)
// @Param media formData file true "Image or video, 10 MB max"
// @Success 201 {object} minting.FairResult "Minted fair"
// @Failure 400 {object} map[string]string "Invalid form"
// @Failure 401 {object} map[string]string "Missing caller"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /fairs [post]
func (h *Handler) HandleCreateFair(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	req := FairRequest{
		Caller:        c.Get(CallerHeader),
		FairName:      c.FormValue("fairName"),
		OrganizerName: c.FormValue("organizerName"),
		Sector:        c.FormValue("sector"),
		SubSector:     c.FormValue("subSector"),
	}

	if fh, err := c.FormFile("media"); err == nil {
		f, err := fh.Open()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Failed to read media"})
		}
		defer f.Close()
		req.Media = f
		req.MediaSize = fh.Size
		req.ContentType = fh.Header.Get("Content-Type")
	}

	res, err := h.service.CreateFair(c.UserContext(), req)
	if err != nil {
		status := statusFor(err)
		if status >= fiber.StatusInternalServerError {
			l.Error("Fair creation failed", zap.Error(err))
		} else {
			l.Warn("Fair creation rejected", zap.Error(err))
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(res)
}

func statusFor(err error) int {
	var rejected *reconcile.RejectedError
	switch {
	case errors.Is(err, ErrMissingName), errors.Is(err, ErrMissingMedia),
		errors.Is(err, ErrMediaTooLarge), errors.Is(err, ErrInvalidMediaType):
		return fiber.StatusBadRequest
	case errors.Is(err, reconcile.ErrUnauthenticated):
		return fiber.StatusUnauthorized
	case errors.As(err, &rejected):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
