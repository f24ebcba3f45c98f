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

type menuItemRequest struct {
	ItemID      string   `json:"item_id" validate:"required,max=20"`
	ItemName    string   `json:"item_name" validate:"required,max=120"`
	Description string   `json:"description" validate:"max=500"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
}

func (r *menuItemRequest) input() *usecase.MenuItemInput {
	return &usecase.MenuItemInput{
		ItemID:      r.ItemID,
		ItemName:    r.ItemName,
		Description: r.Description,
		Price:       *r.Price,
	}
}

// MenuHandler serves the catalog and its administration.
type MenuHandler struct {
	uc       usecase.MenuUsecase
	streamer *sse.Streamer
}

// NewMenuHandler is the constructor for MenuHandler, injected by Fx.
func NewMenuHandler(uc usecase.MenuUsecase, streamer *sse.Streamer) *MenuHandler {
	return &MenuHandler{uc: uc, streamer: streamer}
}

// List returns the catalog, filtered by the optional "q" substring.
func (h *MenuHandler) List(c echo.Context) error {
	items, err := h.uc.ListMenu(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items)
}

// Stream streams the catalog, filtered like List.
func (h *MenuHandler) Stream(c echo.Context) error {
	search := c.QueryParam("q")

	return h.streamer.Serve(c, middleware.Session(c), func(ctx context.Context) live.Feed {
		return h.uc.StreamMenu(ctx, search)
	})
}

// Create adds a menu item.
func (h *MenuHandler) Create(c echo.Context) error {
	var req menuItemRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	item, err := h.uc.CreateMenuItem(c.Request().Context(), req.input())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, item)
}

// Update replaces the editable fields of a menu item.
func (h *MenuHandler) Update(c echo.Context) error {
	var req menuItemRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	item, err := h.uc.UpdateMenuItem(c.Request().Context(), c.Param("id"), req.input())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, item)
}

// Delete removes a menu item.
func (h *MenuHandler) Delete(c echo.Context) error {
	if err := h.uc.DeleteMenuItem(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}
