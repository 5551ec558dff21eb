package producttype

import (
	"errors"

	"sync-actions/core/diff"
	"sync-actions/core/logger"
	"sync-actions/core/reconcile"
	"sync-actions/feature/producttype/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for product-type actions.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the product-type routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/product-types")
	group.Post("/actions", h.HandleActions)
	group.Post("/actions/delta", h.HandleDeltaActions)
	group.Post("/snapshots/actions", h.HandleSnapshotActions)
	group.Get("/snapshots/check", h.HandleCheckSnapshots)
	group.Get("/plans", h.HandleListPlans)
	group.Get("/plans/:id", h.HandleGetPlan)
}

// HandleActions computes the actions between two inline snapshots.
// @Summary Compute Actions
// @Description Compute the ordered update actions that turn previous into next.
// @Tags product-types
// @Accept json
// @Produce json
// @Param request body models.ActionsRequest true "Snapshots"
// @Success 200 {object} models.ActionsResponse "Actions"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /product-types/actions [post]
func (h *Handler) HandleActions(c *fiber.Ctx) error {
	var req models.ActionsRequest
	if err := c.BodyParser(&req); err != nil {
		return h.fail(c, fiber.StatusBadRequest, err)
	}

	resp, err := h.service.ComputeActions(c.Context(), req)
	if err != nil {
		return h.fail(c, statusOf(err), err)
	}
	return c.JSON(resp)
}

// HandleDeltaActions maps a pre-computed delta onto actions.
// @Summary Compute Actions From Delta
// @Description Map a jsondiffpatch delta between previous and next onto update actions.
// @Tags product-types
// @Accept json
// @Produce json
// @Param request body models.DeltaRequest true "Snapshots and delta"
// @Success 200 {object} models.ActionsResponse "Actions"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /product-types/actions/delta [post]
func (h *Handler) HandleDeltaActions(c *fiber.Ctx) error {
	var req models.DeltaRequest
	if err := c.BodyParser(&req); err != nil {
		return h.fail(c, fiber.StatusBadRequest, err)
	}

	resp, err := h.service.ComputeFromDelta(c.Context(), req)
	if err != nil {
		return h.fail(c, statusOf(err), err)
	}
	return c.JSON(resp)
}

// HandleSnapshotActions computes the actions between two stored snapshots.
// @Summary Compute Actions From Snapshots
// @Description Load two snapshots from storage, compute their actions and record the plan.
// @Tags product-types
// @Accept json
// @Produce json
// @Param request body models.SnapshotActionsRequest true "Snapshot object names"
// @Success 200 {object} models.ActionsResponse "Actions"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Snapshot Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /product-types/snapshots/actions [post]
func (h *Handler) HandleSnapshotActions(c *fiber.Ctx) error {
	var req models.SnapshotActionsRequest
	if err := c.BodyParser(&req); err != nil {
		return h.fail(c, fiber.StatusBadRequest, err)
	}
	if req.Previous == "" || req.Next == "" {
		return h.fail(c, fiber.StatusBadRequest, reconcile.ErrMissingObject)
	}

	resp, err := h.service.ComputeFromSnapshots(c.Context(), req)
	if err != nil {
		return h.fail(c, statusOf(err), err)
	}
	return c.JSON(resp)
}

// HandleGetPlan returns a recorded plan.
// @Summary Get Plan
// @Description Get a recorded action plan by id.
// @Tags product-types
// @Produce json
// @Param id path string true "Plan ID"
// @Success 200 {object} models.PlanRecord "Plan"
// @Failure 404 {object} map[string]string "Plan Not Found"
// @Failure 503 {object} map[string]string "Plans Disabled"
// @Router /product-types/plans/{id} [get]
func (h *Handler) HandleGetPlan(c *fiber.Ctx) error {
	plan, err := h.service.GetPlan(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, statusOf(err), err)
	}
	return c.JSON(plan)
}

// HandleCheckSnapshots decodes every stored snapshot.
// @Summary Check Snapshots
// @Description Download every stored snapshot and report the ones that are not valid product types.
// @Tags product-types
// @Produce json
// @Success 200 {object} models.SnapshotReport "Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /product-types/snapshots/check [get]
func (h *Handler) HandleCheckSnapshots(c *fiber.Ctx) error {
	report, err := h.service.CheckSnapshots(c.Context())
	if err != nil {
		return h.fail(c, statusOf(err), err)
	}
	return c.JSON(report)
}

// HandleListPlans lists the recent plans of a product type.
// @Summary List Plans
// @Description List the most recent recorded plans of a product type.
// @Tags product-types
// @Produce json
// @Param key query string true "Product type key"
// @Param limit query int false "Maximum number of plans"
// @Success 200 {array} models.PlanRecord "Plans"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 503 {object} map[string]string "Plans Disabled"
// @Router /product-types/plans [get]
func (h *Handler) HandleListPlans(c *fiber.Ctx) error {
	key := c.Query("key")
	if key == "" {
		return h.fail(c, fiber.StatusBadRequest, errors.New("key query parameter is required"))
	}
	plans, err := h.service.ListPlans(c.Context(), key, c.QueryInt("limit", 20))
	if err != nil {
		return h.fail(c, statusOf(err), err)
	}
	return c.JSON(plans)
}

func (h *Handler) fail(c *fiber.Ctx, status int, err error) error {
	l := logger.WithRayID(h.service.logger, c)
	if status >= fiber.StatusInternalServerError {
		l.Error("Product type request failed", zap.Error(err))
	} else {
		l.Debug("Product type request rejected", zap.Int("status", status), zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, reconcile.ErrMissingObject),
		errors.Is(err, reconcile.ErrInvalidGroup),
		errors.Is(err, diff.ErrUnsupportedValue),
		errors.Is(err, ErrUnknownAction),
		errors.Is(err, ErrInvalidAction):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrPlanNotFound), errors.Is(err, ErrSnapshotNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrPlansDisabled):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}
