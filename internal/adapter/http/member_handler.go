package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	memberuc "github.com/Yazidbusthomy27/KoperasiKita/internal/usecase/member"
)

type MemberHandler struct{ uc *memberuc.Usecase }

func NewMemberHandler(uc *memberuc.Usecase) *MemberHandler { return &MemberHandler{uc: uc} }

// ListMembers scopes coordinators to the members they sponsored; admins see
// everyone.
func (h *MemberHandler) ListMembers(c echo.Context) error {
	sponsor := ""
	if roleFrom(c) == roleCoordinator {
		sponsor = actorFrom(c)
	}
	views, err := h.uc.List(c.Request().Context(), sponsor)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, views)
}

func (h *MemberHandler) GetMember(c echo.Context) error {
	view, err := h.uc.Get(c.Request().Context(), c.Param("member_id"))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, view)
}

type createMemberReq struct {
	Name       string `json:"name" validate:"required"`
	NationalID string `json:"national_id" validate:"required"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
	SponsorID  string `json:"sponsor_id"`
}

func (h *MemberHandler) CreateMember(c echo.Context) error {
	var req createMemberReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return writeValidationErr(c, err)
	}
	m, err := h.uc.Create(c.Request().Context(), memberuc.CreateInput(req), actorFrom(c))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, m)
}

type updateMemberReq struct {
	Name       string `json:"name" validate:"required"`
	NationalID string `json:"national_id" validate:"required"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
	SponsorID  string `json:"sponsor_id"`
}

func (h *MemberHandler) UpdateMember(c echo.Context) error {
	var req updateMemberReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return writeValidationErr(c, err)
	}
	m, err := h.uc.Update(c.Request().Context(), c.Param("member_id"), memberuc.UpdateInput(req), actorFrom(c))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, m)
}
