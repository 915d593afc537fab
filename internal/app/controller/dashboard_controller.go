package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/foodiespot/foodiespot-backend/internal/app/service"
	apperrors "github.com/foodiespot/foodiespot-backend/internal/errors"
	"github.com/foodiespot/foodiespot-backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

type DashboardController struct {
	shopService   service.ShopService
	reviewService service.ReviewService
}

func NewDashboardController(shopService service.ShopService, reviewService service.ReviewService) *DashboardController {
	return &DashboardController{
		shopService:   shopService,
		reviewService: reviewService,
	}
}

// GetMyShop returns the owner's shop with its menu and reviews.
// A null shop means the owner has not created one yet, and the client
// shows the shop creation form instead.
// GET /api/v1/dashboard/shop
func (ctrl *DashboardController) GetMyShop(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "")
		return
	}

	shop, err := ctrl.shopService.GetShopByOwner(userID)
	if err != nil {
		log.Error("Failed to fetch owner shop", err, map[string]interface{}{
			"user_id": userID,
		})
		apperrors.InternalError(c, "")
		return
	}

	if shop == nil {
		log.Debug("Owner has no shop yet", map[string]interface{}{
			"user_id": userID,
		})
		c.JSON(http.StatusOK, gin.H{
			"shop": nil,
		})
		return
	}

	detail, err := ctrl.shopService.GetShopDetail(shop.ID)
	if err != nil {
		log.Error("Failed to fetch shop detail", err, map[string]interface{}{
			"shop_id": shop.ID,
			"user_id": userID,
		})
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"shop": detail,
	})
}

// ExportReviews downloads the owner's reviews as an XLSX file
// GET /api/v1/dashboard/reviews/export
func (ctrl *DashboardController) ExportReviews(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "")
		return
	}

	shop, err := ctrl.shopService.GetShopByOwner(userID)
	if err != nil {
		log.Error("Failed to fetch owner shop", err, map[string]interface{}{
			"user_id": userID,
		})
		apperrors.InternalError(c, "")
		return
	}
	if shop == nil {
		apperrors.NotFound(c, apperrors.ShopNotFound, "Create a shop before exporting reviews")
		return
	}

	reviews, err := ctrl.reviewService.GetShopReviews(shop.ID)
	if err != nil {
		log.Error("Failed to fetch reviews for export", err, map[string]interface{}{
			"shop_id": shop.ID,
		})
		apperrors.InternalError(c, "")
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Reviews"
	f.SetSheetName(f.GetSheetName(0), sheetName)

	headers := []string{"Date", "Customer", "Rating", "Comment"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	for i, review := range reviews {
		row := i + 2
		customer := ""
		if review.User.ID != 0 {
			customer = review.User.FullName
		}
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), review.CreatedAt.Format("2006-01-02 15:04"))
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), customer)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), review.Rating)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), review.Comment)
	}

	filename := fmt.Sprintf("reviews_%d_%s.xlsx", shop.ID, time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := f.Write(c.Writer); err != nil {
		log.Error("Failed to write XLSX export", err, map[string]interface{}{
			"shop_id": shop.ID,
		})
		return
	}

	log.Info("Reviews exported", map[string]interface{}{
		"shop_id": shop.ID,
		"count":   len(reviews),
	})
}
