package handler

import (
	"context"
	"net/http"

	"canteen/internal/delivery/api/middleware"
	"canteen/internal/delivery/api/response"
	"canteen/internal/delivery/api/sse"
	"canteen/internal/usecase"
	"canteen/internal/usecase/live"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type renameRequest struct {
	Name string `json:"name" validate:"required,max=80"`
}

type setAdminRequest struct {
	Admin *bool `json:"admin" validate:"required"`
}

// AccountHandler serves the caller's profile and the admin users screen.
type AccountHandler struct {
	account  usecase.AccountUsecase
	users    usecase.UsersUsecase
	streamer *sse.Streamer
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(account usecase.AccountUsecase, users usecase.UsersUsecase, streamer *sse.Streamer) *AccountHandler {
	return &AccountHandler{account: account, users: users, streamer: streamer}
}

// GetProfile returns the caller's profile.
func (h *AccountHandler) GetProfile(c echo.Context) error {
	profile, err := h.account.GetProfile(c.Request().Context(), middleware.Session(c).UID())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// Rename changes the caller's display name.
func (h *AccountHandler) Rename(c echo.Context) error {
	var req renameRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	profile, err := h.account.Rename(c.Request().Context(), middleware.Session(c).UID(), req.Name)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// ListUsers returns every profile.
func (h *AccountHandler) ListUsers(c echo.Context) error {
	users, err := h.users.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, users)
}

// StreamUsers streams every profile.
func (h *AccountHandler) StreamUsers(c echo.Context) error {
	return h.streamer.Serve(c, middleware.Session(c), func(ctx context.Context) live.Feed {
		return h.users.StreamUsers(ctx)
	})
}

// SetAdmin grants or revokes another profile's admin flag.
func (h *AccountHandler) SetAdmin(c echo.Context) error {
	var req setAdminRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	profile, err := h.users.SetAdmin(c.Request().Context(), middleware.Actor(c), c.Param("id"), *req.Admin)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile)
}
