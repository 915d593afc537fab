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

type ReviewController struct {
	reviewService service.ReviewService
}

func NewReviewController(reviewService service.ReviewService) *ReviewController {
	return &ReviewController{
		reviewService: reviewService,
	}
}

type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// ListShopReviews returns a shop's reviews, newest first
// GET /api/v1/shops/:id/reviews
func (ctrl *ReviewController) ListShopReviews(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	shopID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid shop ID")
		return
	}

	reviews, err := ctrl.reviewService.GetShopReviews(uint(shopID))
	if err != nil {
		if errors.Is(err, service.ErrShopNotFound) {
			apperrors.NotFound(c, apperrors.ShopNotFound, "Shop not found")
			return
		}
		log.Error("Failed to list reviews", err, map[string]interface{}{
			"shop_id": shopID,
		})
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reviews": reviews,
		"count":   len(reviews),
	})
}

// CreateReview posts a review and returns the shop's updated rating
// POST /api/v1/shops/:id/reviews
func (ctrl *ReviewController) CreateReview(c *gin.Context) {
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

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid review request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ReviewInvalidRating, "Rating must be between 1 and 5")
		return
	}

	review, shop, err := ctrl.reviewService.CreateReview(userID, uint(shopID), req.Rating, req.Comment)
	if err != nil {
		if errors.Is(err, service.ErrShopNotFound) {
			apperrors.NotFound(c, apperrors.ShopNotFound, "Shop not found")
			return
		}
		if errors.Is(err, service.ErrInvalidRating) {
			apperrors.BadRequest(c, apperrors.ReviewInvalidRating, "Rating must be between 1 and 5")
			return
		}
		log.Error("Failed to create review", err, map[string]interface{}{
			"shop_id": shopID,
			"user_id": userID,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "create review")
		return
	}

	log.Info("Review created", map[string]interface{}{
		"review_id":      review.ID,
		"shop_id":        shopID,
		"user_id":        userID,
		"rating":         req.Rating,
		"average_rating": shop.AverageRating,
		"total_reviews":  shop.TotalReviews,
	})

	// The shop is re-read after the transaction so the client sees the
	// updated aggregate without a second round trip
	c.JSON(http.StatusCreated, gin.H{
		"message": "Review posted successfully",
		"review":  review,
		"shop": gin.H{
			"id":             shop.ID,
			"average_rating": shop.AverageRating,
			"total_reviews":  shop.TotalReviews,
			"rating_label":   shop.RatingLabel,
		},
	})
}
