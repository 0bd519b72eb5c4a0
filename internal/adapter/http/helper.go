package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/Yazidbusthomy27/KoperasiKita/internal/domain/loan"
	"github.com/Yazidbusthomy27/KoperasiKita/internal/domain/member"
	"github.com/Yazidbusthomy27/KoperasiKita/internal/domain/transaction"
	"github.com/Yazidbusthomy27/KoperasiKita/internal/usecase/distribution"
)

// Identity headers filled in by the external identity collaborator; the
// engine only consumes the resolved strings.
const (
	headerActorID   = "Ax-Actor-Id"
	headerActorRole = "Ax-Actor-Role"

	roleCoordinator = "coordinator"
)

func actorFrom(c echo.Context) string {
	if a := strings.TrimSpace(c.Request().Header.Get(headerActorID)); a != "" {
		return a
	}
	return "admin"
}

func roleFrom(c echo.Context) string {
	return strings.TrimSpace(c.Request().Header.Get(headerActorRole))
}

// writeErr maps domain errors onto HTTP statuses.
func writeErr(c echo.Context, err error) error {
	var partial *distribution.PartialError
	switch {
	case errors.Is(err, member.ErrNotFound),
		errors.Is(err, loan.ErrNotFound),
		errors.Is(err, loan.ErrNoActiveLoan),
		errors.Is(err, transaction.ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, transaction.ErrInsufficientFunds):
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	case errors.As(err, &partial):
		return c.JSON(http.StatusInternalServerError, map[string]any{
			"error":   partial.Error(),
			"applied": partial.Applied,
			"total":   partial.Total,
		})
	default:
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
}

// writeValidationErr flattens validator errors into per-field messages.
func writeValidationErr(c echo.Context, err error) error {
	resp := ErrorResponse{Error: "validation failed"}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			resp.Details = append(resp.Details, FieldError{
				Field:   strings.ToLower(fe.Field()),
				Message: "failed rule " + fe.Tag(),
			})
		}
	} else {
		resp.Error = err.Error()
	}
	return c.JSON(http.StatusBadRequest, resp)
}

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
