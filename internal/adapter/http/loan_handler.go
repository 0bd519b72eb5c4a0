package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	loanuc "github.com/Yazidbusthomy27/KoperasiKita/internal/usecase/loan"
)

type LoanHandler struct{ uc *loanuc.Usecase }

func NewLoanHandler(uc *loanuc.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

func (h *LoanHandler) ListLoans(c echo.Context) error {
	loans, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, loans)
}

type disburseLoanReq struct {
	MemberID           string  `json:"member_id" validate:"required"`
	Principal          float64 `json:"principal" validate:"required,gt=0,intlike"`
	MonthlyRatePercent float64 `json:"monthly_rate_percent" validate:"gte=0"`
	TermMonths         int     `json:"term_months" validate:"required,gt=0"`
}

func (h *LoanHandler) DisburseLoan(c echo.Context) error {
	var req disburseLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return writeValidationErr(c, err)
	}
	l, err := h.uc.Disburse(c.Request().Context(), loanuc.DisburseInput(req))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, l)
}
