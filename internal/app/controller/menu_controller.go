package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/foodiespot/foodiespot-backend/internal/app/service"
	apperrors "github.com/foodiespot/foodiespot-backend/internal/errors"
	"github.com/foodiespot/foodiespot-backend/internal/middleware"
	"github.com/foodiespot/foodiespot-backend/pkg/util"
	"github.com/gin-gonic/gin"
)

type MenuController struct {
	menuService service.MenuService
}

func NewMenuController(menuService service.MenuService) *MenuController {
	return &MenuController{
		menuService: menuService,
	}
}

// Price arrives as a string and is validated server-side, so "abc" or
// a negative amount never reaches the database
type MenuItemRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Price       string `json:"price" binding:"required"`
	ImageURL    string `json:"image_url"`
	InStock     *bool  `json:"in_stock"`
}

// CreateItem adds a menu item to the owner's shop
// POST /api/v1/shops/:id/items
func (ctrl *MenuController) CreateItem(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "")
		return
	}

	shopID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid shop ID")
		return
	}

	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid menu item request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Item name and price are required")
		return
	}

	item, err := ctrl.menuService.CreateItem(userID, uint(shopID), service.MenuItemInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		InStock:     req.InStock,
	})
	if err != nil {
		ctrl.respondMenuError(c, err, "create menu item")
		return
	}

	log.Info("Menu item created", map[string]interface{}{
		"item_id": item.ID,
		"shop_id": shopID,
		"user_id": userID,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message": "Item added successfully",
		"item":    item,
	})
}

// UpdateItem edits a menu item on the owner's shop
// PUT /api/v1/items/:id
func (ctrl *MenuController) UpdateItem(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "")
		return
	}

	itemID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid item ID")
		return
	}

	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid menu item request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Item name and price are required")
		return
	}

	item, err := ctrl.menuService.UpdateItem(userID, uint(itemID), service.MenuItemInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		InStock:     req.InStock,
	})
	if err != nil {
		ctrl.respondMenuError(c, err, "update menu item")
		return
	}

	log.Info("Menu item updated", map[string]interface{}{
		"item_id": item.ID,
		"user_id": userID,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Item updated successfully",
		"item":    item,
	})
}

// DeleteItem removes a menu item from the owner's shop
// DELETE /api/v1/items/:id
func (ctrl *MenuController) DeleteItem(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "")
		return
	}

	itemID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid item ID")
		return
	}

	if err := ctrl.menuService.DeleteItem(userID, uint(itemID)); err != nil {
		ctrl.respondMenuError(c, err, "delete menu item")
		return
	}

	log.Info("Menu item deleted", map[string]interface{}{
		"item_id": itemID,
		"user_id": userID,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Item deleted successfully",
	})
}

// ToggleStock flips a menu item between in stock and sold out
// PATCH /api/v1/items/:id/stock
func (ctrl *MenuController) ToggleStock(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "")
		return
	}

	itemID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid item ID")
		return
	}

	item, err := ctrl.menuService.ToggleStock(userID, uint(itemID))
	if err != nil {
		ctrl.respondMenuError(c, err, "toggle item stock")
		return
	}

	log.Info("Menu item stock toggled", map[string]interface{}{
		"item_id":  item.ID,
		"in_stock": item.InStock,
		"user_id":  userID,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Item stock updated",
		"item":    item,
	})
}

func (ctrl *MenuController) respondMenuError(c *gin.Context, err error, context string) {
	log := middleware.GetLoggerFromContext(c)

	switch {
	case errors.Is(err, service.ErrShopNotFound):
		apperrors.NotFound(c, apperrors.ShopNotFound, "Shop not found")
	case errors.Is(err, service.ErrItemNotFound):
		apperrors.NotFound(c, apperrors.ItemNotFound, "Menu item not found")
	case errors.Is(err, service.ErrShopAccessDenied):
		apperrors.Forbidden(c, "You can only manage your own menu")
	case errors.Is(err, service.ErrItemNameRequired):
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Item name is required")
	case errors.Is(err, util.ErrInvalidPrice):
		apperrors.BadRequest(c, apperrors.ItemInvalidPrice, "Price must be a non-negative number")
	default:
		log.Error("Menu operation failed", err, map[string]interface{}{
			"context": context,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, context)
	}
}
