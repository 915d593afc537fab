package scheduler

import (
	"github.com/foodiespot/foodiespot-backend/internal/app/repository"
	"github.com/foodiespot/foodiespot-backend/internal/app/service"
	"github.com/foodiespot/foodiespot-backend/pkg/logger"
	"github.com/robfig/cron/v3"
)

// RatingScheduler reconciles stored shop rating aggregates against the
// review table. Aggregates are maintained transactionally on every review
// write, so this is a safety net for drift (manual data fixes, restored
// backups), not the primary mechanism.
type RatingScheduler struct {
	cron          *cron.Cron
	shopRepo      repository.ShopRepository
	reviewService service.ReviewService
}

func NewRatingScheduler(shopRepo repository.ShopRepository, reviewService service.ReviewService) *RatingScheduler {
	return &RatingScheduler{
		cron:          cron.New(),
		shopRepo:      shopRepo,
		reviewService: reviewService,
	}
}

// Start schedules the nightly reconciliation at 4:00 AM
func (s *RatingScheduler) Start() error {
	_, err := s.cron.AddFunc("0 4 * * *", func() {
		logger.Info("Starting scheduled rating reconciliation", nil)

		shopIDs, err := s.shopRepo.AllIDs()
		if err != nil {
			logger.Error("Failed to list shops for rating reconciliation", err)
			return
		}

		failed := 0
		for _, shopID := range shopIDs {
			if err := s.reviewService.RecomputeShopRating(shopID); err != nil {
				logger.Error("Failed to recompute shop rating", err, map[string]interface{}{
					"shop_id": shopID,
				})
				failed++
			}
		}

		logger.Info("Rating reconciliation completed", map[string]interface{}{
			"shops":  len(shopIDs),
			"failed": failed,
		})
	})

	if err != nil {
		logger.Error("Failed to add cron job for rating reconciliation", err)
		return err
	}

	s.cron.Start()
	logger.Info("Rating scheduler started successfully (daily at 4:00 AM)", nil)

	return nil
}

// Stop halts the scheduler
func (s *RatingScheduler) Stop() {
	logger.Info("Stopping rating scheduler...", nil)
	s.cron.Stop()
	logger.Info("Rating scheduler stopped", nil)
}
