package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"scenicinn/models"
	"scenicinn/services/catalog"
)

// MenuHandler serves the read-only catalog endpoints.
type MenuHandler struct {
	Catalog catalog.Reader
	Logger  *zap.Logger
}

func NewMenuHandler(reader catalog.Reader, logger *zap.Logger) *MenuHandler {
	return &MenuHandler{Catalog: reader, Logger: logger}
}

// ListMenus returns all menus offered by the venue.
func (h *MenuHandler) ListMenus(c *gin.Context) {
	menus, err := h.Catalog.ListMenus(c.Request.Context())
	if err != nil {
		h.Logger.Error("failed to list menus", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load menus"})
		return
	}
	if menus == nil {
		menus = []models.Menu{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": menus})
}

// ListMenuItems returns the items of one menu. An unknown menu id yields an
// empty list, not an error.
func (h *MenuHandler) ListMenuItems(c *gin.Context) {
	menuID := c.Param("menuId")
	items, err := h.Catalog.ListMenuItems(c.Request.Context(), menuID)
	if err != nil {
		h.Logger.Error("failed to list menu items", zap.String("menuId", menuID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load menu items"})
		return
	}
	if items == nil {
		items = []models.MenuItem{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": items})
}
