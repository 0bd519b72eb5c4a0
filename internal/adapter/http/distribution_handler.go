package http

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	distuc "github.com/Yazidbusthomy27/KoperasiKita/internal/usecase/distribution"
)

type DistributionHandler struct{ uc *distuc.Usecase }

func NewDistributionHandler(uc *distuc.Usecase) *DistributionHandler {
	return &DistributionHandler{uc: uc}
}

func (h *DistributionHandler) Summary(c echo.Context) error {
	s, err := h.uc.Summary(c.Request().Context())
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

type distributionReq struct {
	ManualProfit       float64 `json:"manual_profit" validate:"gte=0,intlike"`
	MemberSharePercent float64 `json:"member_share_percent" validate:"gte=0,lte=100"`
}

// Preview returns the plan without touching any balance.
func (h *DistributionHandler) Preview(c echo.Context) error {
	var req distributionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return writeValidationErr(c, err)
	}
	plan, err := h.uc.Plan(c.Request().Context(), req.ManualProfit, req.MemberSharePercent)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, plan)
}

// Execute plans and runs a distribution in one request. The run cannot be
// cancelled; progress goes to the server log.
func (h *DistributionHandler) Execute(c echo.Context) error {
	var req distributionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return writeValidationErr(c, err)
	}

	ctx := c.Request().Context()
	plan, err := h.uc.Plan(ctx, req.ManualProfit, req.MemberSharePercent)
	if err != nil {
		return writeErr(c, err)
	}
	err = h.uc.Execute(ctx, plan, actorFrom(c), func(done, total int) {
		log.Printf("distribution: %d/%d", done, total)
	})
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, plan)
}
