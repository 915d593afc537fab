package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/foodiespot/foodiespot-backend/internal/app/service"
	apperrors "github.com/foodiespot/foodiespot-backend/internal/errors"
	"github.com/foodiespot/foodiespot-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type ShopController struct {
	shopService service.ShopService
}

func NewShopController(shopService service.ShopService) *ShopController {
	return &ShopController{
		shopService: shopService,
	}
}

type ShopRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Location    string `json:"location"`
	ImageURL    string `json:"image_url"`
}

// ListShops returns all shops, optionally filtered by a search term
// GET /api/v1/shops?search=
func (ctrl *ShopController) ListShops(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	search := c.Query("search")

	shops, err := ctrl.shopService.ListShops(search)
	if err != nil {
		log.Error("Failed to list shops", err, map[string]interface{}{
			"search": search,
		})
		apperrors.InternalError(c, "")
		return
	}

	log.Debug("Shops listed", map[string]interface{}{
		"count":  len(shops),
		"search": search,
	})

	c.JSON(http.StatusOK, gin.H{
		"shops": shops,
		"count": len(shops),
	})
}

// GetShopByID returns a single shop with its menu and reviews
// GET /api/v1/shops/:id
func (ctrl *ShopController) GetShopByID(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	shopID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid shop ID")
		return
	}

	shop, err := ctrl.shopService.GetShopDetail(uint(shopID))
	if err != nil {
		if errors.Is(err, service.ErrShopNotFound) {
			apperrors.NotFound(c, apperrors.ShopNotFound, "Shop not found")
			return
		}
		log.Error("Failed to fetch shop", err, map[string]interface{}{
			"shop_id": shopID,
		})
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"shop": shop,
	})
}

// CreateShop registers a new shop for the authenticated owner
// POST /api/v1/shops
func (ctrl *ShopController) CreateShop(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "")
		return
	}

	var req ShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid shop request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ShopNameRequired, "Shop name is required")
		return
	}

	shop, err := ctrl.shopService.CreateShop(userID, service.ShopMutation{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		if errors.Is(err, service.ErrShopNameRequired) {
			apperrors.BadRequest(c, apperrors.ShopNameRequired, "Shop name is required")
			return
		}
		if errors.Is(err, service.ErrShopAlreadyExists) {
			log.Warn("Shop creation rejected: owner already has a shop", map[string]interface{}{
				"user_id": userID,
			})
			apperrors.Conflict(c, apperrors.ShopAlreadyExists, "You already have a shop. Edit it from your dashboard")
			return
		}
		log.Error("Failed to create shop", err, map[string]interface{}{
			"user_id": userID,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "create shop")
		return
	}

	log.Info("Shop created", map[string]interface{}{
		"shop_id": shop.ID,
		"user_id": userID,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message": "Shop created successfully",
		"shop":    shop,
	})
}

// UpdateShop edits the authenticated owner's shop
// PUT /api/v1/shops/:id
func (ctrl *ShopController) UpdateShop(c *gin.Context) {
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

	var req ShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid shop request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ShopNameRequired, "Shop name is required")
		return
	}

	shop, err := ctrl.shopService.UpdateShop(userID, uint(shopID), service.ShopMutation{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		if errors.Is(err, service.ErrShopNotFound) {
			apperrors.NotFound(c, apperrors.ShopNotFound, "Shop not found")
			return
		}
		if errors.Is(err, service.ErrShopAccessDenied) {
			log.Warn("Shop update rejected: not the owner", map[string]interface{}{
				"shop_id": shopID,
				"user_id": userID,
			})
			apperrors.Forbidden(c, "You can only edit your own shop")
			return
		}
		if errors.Is(err, service.ErrShopNameRequired) {
			apperrors.BadRequest(c, apperrors.ShopNameRequired, "Shop name is required")
			return
		}
		log.Error("Failed to update shop", err, map[string]interface{}{
			"shop_id": shopID,
			"user_id": userID,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "update shop")
		return
	}

	log.Info("Shop updated", map[string]interface{}{
		"shop_id": shop.ID,
		"user_id": userID,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Shop updated successfully",
		"shop":    shop,
	})
}
