package service

import (
	"errors"
	"strings"

	"github.com/foodiespot/foodiespot-backend/internal/app/model"
	"github.com/foodiespot/foodiespot-backend/internal/app/repository"
	"github.com/foodiespot/foodiespot-backend/pkg/logger"
	"gorm.io/gorm"
)

var ErrInvalidRating = errors.New("rating must be between 1 and 5")

type ReviewService interface {
	CreateReview(userID, shopID uint, rating int, comment string) (*model.Review, *model.Shop, error)
	GetShopReviews(shopID uint) ([]model.Review, error)
	RecomputeShopRating(shopID uint) error
}

type reviewService struct {
	reviewRepo *repository.ReviewRepository
	shopRepo   repository.ShopRepository
}

func NewReviewService(reviewRepo *repository.ReviewRepository, shopRepo repository.ShopRepository) ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		shopRepo:   shopRepo,
	}
}

// CreateReview stores a review and returns it together with the re-fetched
// shop, whose aggregate already reflects the new rating. Duplicate reviews
// from the same user are allowed, matching the shop detail page behavior.
func (s *reviewService) CreateReview(userID, shopID uint, rating int, comment string) (*model.Review, *model.Shop, error) {
	if rating < 1 || rating > 5 {
		return nil, nil, ErrInvalidRating
	}

	if _, err := s.shopRepo.FindByID(shopID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrShopNotFound
		}
		return nil, nil, err
	}

	review := &model.Review{
		ShopID:  shopID,
		UserID:  userID,
		Rating:  rating,
		Comment: strings.TrimSpace(comment),
	}

	if err := s.reviewRepo.CreateReview(review); err != nil {
		logger.Error("Failed to create review", err, map[string]interface{}{
			"shop_id": shopID,
			"user_id": userID,
		})
		return nil, nil, err
	}

	// Load the reviewer and the shop's fresh aggregate
	loaded, err := s.reviewRepo.GetReviewByID(review.ID)
	if err != nil {
		return nil, nil, err
	}

	shop, err := s.shopRepo.FindByID(shopID)
	if err != nil {
		return nil, nil, err
	}

	logger.Info("Review created", map[string]interface{}{
		"review_id":      loaded.ID,
		"shop_id":        shopID,
		"rating":         rating,
		"average_rating": shop.AverageRating,
		"total_reviews":  shop.TotalReviews,
	})
	return loaded, shop, nil
}

func (s *reviewService) GetShopReviews(shopID uint) ([]model.Review, error) {
	if _, err := s.shopRepo.FindByID(shopID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShopNotFound
		}
		return nil, err
	}

	return s.reviewRepo.GetReviewsByShopID(shopID)
}

// RecomputeShopRating rebuilds one shop's stored aggregate, used by the
// nightly reconciliation job
func (s *reviewService) RecomputeShopRating(shopID uint) error {
	return s.reviewRepo.RecomputeShopRating(shopID)
}
