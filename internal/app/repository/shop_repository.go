package repository

import (
	"strings"

	"github.com/foodiespot/foodiespot-backend/internal/app/model"
	"github.com/foodiespot/foodiespot-backend/pkg/logger"
	"gorm.io/gorm"
)

type ShopFilter struct {
	Search string // case-insensitive substring over name, location, description
}

type ShopRepository interface {
	Create(shop *model.Shop) error
	Update(shop *model.Shop) error
	Delete(id uint) error
	FindAll(filter ShopFilter) ([]model.Shop, error)
	FindByID(id uint) (*model.Shop, error)
	FindByIDWithDetails(id uint) (*model.Shop, error)
	FindByOwnerID(ownerID uint) (*model.Shop, error)
	AllIDs() ([]uint, error)
	BulkCreate(shops []model.Shop, batchSize int) error
}

type shopRepository struct {
	db *gorm.DB
}

func NewShopRepository(db *gorm.DB) ShopRepository {
	return &shopRepository{db: db}
}

func (r *shopRepository) Create(shop *model.Shop) error {
	logger.Debug("Creating shop in database", map[string]interface{}{
		"name":     shop.Name,
		"owner_id": shop.OwnerID,
	})

	if err := r.db.Create(shop).Error; err != nil {
		logger.Error("Failed to create shop in database", err, map[string]interface{}{
			"name":     shop.Name,
			"owner_id": shop.OwnerID,
		})
		return err
	}

	logger.Debug("Shop created in database", map[string]interface{}{
		"shop_id":  shop.ID,
		"name":     shop.Name,
		"owner_id": shop.OwnerID,
	})
	return nil
}

func (r *shopRepository) Update(shop *model.Shop) error {
	logger.Debug("Updating shop in database", map[string]interface{}{
		"shop_id": shop.ID,
		"name":    shop.Name,
	})

	if err := r.db.Save(shop).Error; err != nil {
		logger.Error("Failed to update shop in database", err, map[string]interface{}{
			"shop_id": shop.ID,
			"name":    shop.Name,
		})
		return err
	}

	return nil
}

func (r *shopRepository) Delete(id uint) error {
	logger.Debug("Deleting shop from database", map[string]interface{}{
		"shop_id": id,
	})

	if err := r.db.Delete(&model.Shop{}, id).Error; err != nil {
		logger.Error("Failed to delete shop from database", err, map[string]interface{}{
			"shop_id": id,
		})
		return err
	}

	return nil
}

// FindAll returns shops ordered by average rating descending. When a search
// term is given only shops whose name, location or description contains it
// (case-insensitive) are returned; an empty term returns everything.
func (r *shopRepository) FindAll(filter ShopFilter) ([]model.Shop, error) {
	logger.Debug("Finding shops", map[string]interface{}{
		"search": filter.Search,
	})

	query := r.db.Model(&model.Shop{})

	if term := strings.TrimSpace(filter.Search); term != "" {
		// LOWER + LIKE instead of ILIKE so the same query runs on the
		// sqlite test database
		like := "%" + strings.ToLower(term) + "%"
		query = query.Where(
			"LOWER(name) LIKE ? OR LOWER(location) LIKE ? OR LOWER(description) LIKE ?",
			like, like, like,
		)
	}

	var shops []model.Shop
	if err := query.Order("average_rating DESC").Find(&shops).Error; err != nil {
		logger.Error("Failed to find shops", err, map[string]interface{}{
			"search": filter.Search,
		})
		return nil, err
	}

	logger.Debug("Shops found", map[string]interface{}{
		"count": len(shops),
	})
	return shops, nil
}

func (r *shopRepository) FindByID(id uint) (*model.Shop, error) {
	var shop model.Shop
	if err := r.db.First(&shop, id).Error; err != nil {
		return nil, err
	}
	return &shop, nil
}

// FindByIDWithDetails loads a shop together with its menu (name ascending)
// and reviews (newest first, reviewer preloaded)
func (r *shopRepository) FindByIDWithDetails(id uint) (*model.Shop, error) {
	logger.Debug("Finding shop with details", map[string]interface{}{
		"shop_id": id,
	})

	var shop model.Shop
	err := r.db.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("name ASC")
		}).
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC, id DESC")
		}).
		Preload("Reviews.User").
		First(&shop, id).Error
	if err != nil {
		return nil, err
	}

	return &shop, nil
}

func (r *shopRepository) FindByOwnerID(ownerID uint) (*model.Shop, error) {
	var shop model.Shop
	err := r.db.Where("owner_id = ?", ownerID).First(&shop).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &shop, nil
}

// AllIDs returns every shop id, used by the nightly rating reconciliation
func (r *shopRepository) AllIDs() ([]uint, error) {
	var ids []uint
	if err := r.db.Model(&model.Shop{}).Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// BulkCreate inserts shops in batches, used by the XLSX seed importer
func (r *shopRepository) BulkCreate(shops []model.Shop, batchSize int) error {
	logger.Info("Bulk creating shops", map[string]interface{}{
		"count":      len(shops),
		"batch_size": batchSize,
	})

	if err := r.db.CreateInBatches(shops, batchSize).Error; err != nil {
		logger.Error("Failed to bulk create shops", err, map[string]interface{}{
			"count": len(shops),
		})
		return err
	}

	return nil
}
