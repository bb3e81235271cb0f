package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"agrioptimize.backend/internal/domain/entities"
	domainerrors "agrioptimize.backend/internal/domain/errors"
	"agrioptimize.backend/internal/infrastructure/models"
	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
)

// isUniqueViolation reports whether err is a unique-index violation. The
// unique indexes are the only concurrency guard against duplicate creates,
// so a losing racer must surface as AlreadyExists.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}

// UserRepository implements user data operations
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.SubjectID == "" {
		user.SubjectID = user.ID.String()
	}

	m := &models.User{
		ID:                  user.ID,
		SubjectID:           user.SubjectID,
		Email:               user.Email,
		FirstName:           user.FirstName,
		LastName:            user.LastName,
		PasswordHash:        user.PasswordHash,
		FarmName:            user.FarmName,
		FarmSize:            user.FarmSize,
		PhotoURL:            user.PhotoURL,
		OnboardingCompleted: user.OnboardingCompleted,
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}

	user.CreatedAt = m.CreatedAt
	user.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	var m models.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toUserEntity(&m), nil
}

// GetByEmail gets a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	var m models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toUserEntity(&m), nil
}

// GetBySubjectID gets a user by identity-provider subject id
func (r *UserRepository) GetBySubjectID(ctx context.Context, subjectID string) (*entities.User, error) {
	var m models.User
	if err := r.db.WithContext(ctx).Where("subject_id = ?", subjectID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toUserEntity(&m), nil
}

// Update updates the mutable fields of a user. SubjectID and Email identity
// are left alone except for the profile fields the sign-in flow refreshes.
func (r *UserRepository) Update(ctx context.Context, user *entities.User) error {
	updates := map[string]interface{}{
		"first_name":           user.FirstName,
		"last_name":            user.LastName,
		"email":                user.Email,
		"farm_name":            user.FarmName,
		"farm_size":            user.FarmSize,
		"photo_url":            user.PhotoURL,
		"onboarding_completed": user.OnboardingCompleted,
		"updated_at":           time.Now(),
	}

	result := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", user.ID).Updates(updates)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return domainerrors.ErrAlreadyExists
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// TouchLastLogin records a successful login
func (r *UserRepository) TouchLastLogin(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", id).
		Update("last_login_at", time.Now())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func toUserEntity(m *models.User) *entities.User {
	return &entities.User{
		ID:                  m.ID,
		SubjectID:           m.SubjectID,
		Email:               m.Email,
		FirstName:           m.FirstName,
		LastName:            m.LastName,
		PasswordHash:        m.PasswordHash,
		FarmName:            m.FarmName,
		FarmSize:            m.FarmSize,
		PhotoURL:            m.PhotoURL,
		OnboardingCompleted: m.OnboardingCompleted,
		LastLoginAt:         null.TimeFromPtr(m.LastLoginAt),
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}
