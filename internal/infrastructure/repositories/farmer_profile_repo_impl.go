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

// FarmerProfileRepository implements farmer profile data operations
type FarmerProfileRepository struct {
	db *gorm.DB
}

// NewFarmerProfileRepository creates a new farmer profile repository
func NewFarmerProfileRepository(db *gorm.DB) *FarmerProfileRepository {
	return &FarmerProfileRepository{db: db}
}

// Create creates a farmer profile. The unique index on user_id turns a
// concurrent duplicate create into AlreadyExists.
func (r *FarmerProfileRepository) Create(ctx context.Context, profile *entities.FarmerProfile) error {
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}

	m := &models.FarmerProfile{
		ID:        profile.ID,
		UserID:    profile.UserID,
		FirstName: profile.FirstName,
		LastName:  profile.LastName,
		Email:     profile.Email,
		Phone:     profile.Phone,
		Address:   profile.Address,
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}

	profile.CreatedAt = m.CreatedAt
	profile.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByUserID gets the profile owned by userID
func (r *FarmerProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.FarmerProfile, error) {
	var m models.FarmerProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toFarmerProfileEntity(&m), nil
}

// Update replaces the mutable fields of the profile owned by profile.UserID.
// The owner reference itself is never updated.
func (r *FarmerProfileRepository) Update(ctx context.Context, profile *entities.FarmerProfile) error {
	updates := map[string]interface{}{
		"first_name": profile.FirstName,
		"last_name":  profile.LastName,
		"email":      profile.Email,
		"phone":      profile.Phone,
		"address":    profile.Address,
		"updated_at": time.Now(),
	}

	result := r.db.WithContext(ctx).Model(&models.FarmerProfile{}).
		Where("user_id = ?", profile.UserID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func toFarmerProfileEntity(m *models.FarmerProfile) *entities.FarmerProfile {
	return &entities.FarmerProfile{
		ID:        m.ID,
		UserID:    m.UserID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Email:     m.Email,
		Phone:     m.Phone,
		Address:   m.Address,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
