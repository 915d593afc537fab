package repository

import (
	"github.com/foodiespot/foodiespot-backend/internal/app/model"
	"github.com/foodiespot/foodiespot-backend/pkg/logger"
	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// CreateReview inserts a review and recomputes the shop's stored aggregate
// in the same transaction. The aggregate is always rebuilt from the full
// rating set: adjusting a previously read average would lose one of two
// concurrent inserts.
func (r *ReviewRepository) CreateReview(review *model.Review) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(review).Error; err != nil {
			return err
		}
		return recomputeShopRating(tx, review.ShopID)
	})
}

// DeleteReview removes a review and recomputes the shop aggregate. Not
// reachable through the public API, kept for moderation tooling.
func (r *ReviewRepository) DeleteReview(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var review model.Review
		if err := tx.First(&review, id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&review).Error; err != nil {
			return err
		}
		return recomputeShopRating(tx, review.ShopID)
	})
}

func (r *ReviewRepository) GetReviewByID(id uint) (*model.Review, error) {
	var review model.Review
	err := r.db.Preload("User").First(&review, id).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// GetReviewsByShopID lists a shop's reviews newest first, with the reviewer
// loaded so responses can show the author's name
func (r *ReviewRepository) GetReviewsByShopID(shopID uint) ([]model.Review, error) {
	var reviews []model.Review
	err := r.db.Where("shop_id = ?", shopID).
		Preload("User").
		Order("created_at DESC, id DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// RecomputeShopRating rebuilds one shop's stored aggregate from its live
// reviews. The scheduler calls this nightly for every shop to heal drift.
func (r *ReviewRepository) RecomputeShopRating(shopID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return recomputeShopRating(tx, shopID)
	})
}

func recomputeShopRating(tx *gorm.DB, shopID uint) error {
	var ratings []int
	if err := tx.Model(&model.Review{}).
		Where("shop_id = ?", shopID).
		Pluck("rating", &ratings).Error; err != nil {
		return err
	}

	average, count := model.AggregateRating(ratings)

	if err := tx.Model(&model.Shop{}).
		Where("id = ?", shopID).
		UpdateColumns(map[string]interface{}{
			"average_rating": average,
			"total_reviews":  count,
		}).Error; err != nil {
		return err
	}

	logger.Debug("Shop rating recomputed", map[string]interface{}{
		"shop_id":        shopID,
		"average_rating": average,
		"total_reviews":  count,
	})
	return nil
}
