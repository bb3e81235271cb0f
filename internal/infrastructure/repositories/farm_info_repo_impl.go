package repositories

import (
	"context"
	"errors"
	"time"

	"agrioptimize.backend/internal/domain/entities"
	domainerrors "agrioptimize.backend/internal/domain/errors"
	"agrioptimize.backend/internal/infrastructure/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FarmInfoRepository implements farm info data operations
type FarmInfoRepository struct {
	db *gorm.DB
}

// NewFarmInfoRepository creates a new farm info repository
func NewFarmInfoRepository(db *gorm.DB) *FarmInfoRepository {
	return &FarmInfoRepository{db: db}
}

// Create creates a farm info record, at most one per owner
func (r *FarmInfoRepository) Create(ctx context.Context, info *entities.FarmInfo) error {
	if info.ID == uuid.Nil {
		info.ID = uuid.New()
	}

	m := &models.FarmInfo{
		ID:          info.ID,
		UserID:      info.UserID,
		CropType:    info.CropType,
		LandArea:    info.LandArea,
		Season:      string(info.Season),
		Location:    info.Location,
		FarmingType: string(info.FarmingType),
		SoilType:    info.SoilType,
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}

	info.CreatedAt = m.CreatedAt
	info.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByUserID gets the farm info owned by userID
func (r *FarmInfoRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.FarmInfo, error) {
	var m models.FarmInfo
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toFarmInfoEntity(&m), nil
}

// Update replaces the mutable fields of the record owned by info.UserID
func (r *FarmInfoRepository) Update(ctx context.Context, info *entities.FarmInfo) error {
	updates := map[string]interface{}{
		"crop_type":    info.CropType,
		"land_area":    info.LandArea,
		"season":       string(info.Season),
		"location":     info.Location,
		"farming_type": string(info.FarmingType),
		"soil_type":    info.SoilType,
		"updated_at":   time.Now(),
	}

	result := r.db.WithContext(ctx).Model(&models.FarmInfo{}).
		Where("user_id = ?", info.UserID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func toFarmInfoEntity(m *models.FarmInfo) *entities.FarmInfo {
	return &entities.FarmInfo{
		ID:          m.ID,
		UserID:      m.UserID,
		CropType:    m.CropType,
		LandArea:    m.LandArea,
		Season:      entities.Season(m.Season),
		Location:    m.Location,
		FarmingType: entities.FarmingType(m.FarmingType),
		SoilType:    m.SoilType,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
