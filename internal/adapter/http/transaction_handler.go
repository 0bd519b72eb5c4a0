package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Yazidbusthomy27/KoperasiKita/internal/domain/transaction"
	txnuc "github.com/Yazidbusthomy27/KoperasiKita/internal/usecase/transaction"
)

type TransactionHandler struct{ uc *txnuc.Usecase }

func NewTransactionHandler(uc *txnuc.Usecase) *TransactionHandler {
	return &TransactionHandler{uc: uc}
}

func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	txns, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, txns)
}

type createTransactionReq struct {
	MemberID string  `json:"member_id" validate:"required"`
	Kind     string  `json:"kind" validate:"required"`
	Amount   float64 `json:"amount" validate:"required,gt=0,intlike"`
	Note     string  `json:"note"`
}

func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	var req createTransactionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return writeValidationErr(c, err)
	}
	t, err := h.uc.Apply(c.Request().Context(), txnuc.ApplyInput{
		MemberID: req.MemberID,
		Kind:     transaction.Kind(req.Kind),
		Amount:   req.Amount,
		Note:     req.Note,
	}, actorFrom(c))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, t)
}

func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("transaction_id"), actorFrom(c)); err != nil {
		return writeErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
