package usecases

import (
	"context"
	"errors"

	"agrioptimize.backend/internal/domain/entities"
	domainerrors "agrioptimize.backend/internal/domain/errors"
	"agrioptimize.backend/internal/domain/repositories"
	"github.com/google/uuid"
)

// FarmerUsecase handles farmer profile business logic
type FarmerUsecase struct {
	farmerRepo repositories.FarmerProfileRepository
}

// NewFarmerUsecase creates a new farmer usecase
func NewFarmerUsecase(farmerRepo repositories.FarmerProfileRepository) *FarmerUsecase {
	return &FarmerUsecase{farmerRepo: farmerRepo}
}

// Create creates the caller's profile. email comes from the verified token,
// never from the request body.
func (u *FarmerUsecase) Create(ctx context.Context, userID uuid.UUID, email string, input *entities.CreateFarmerProfileInput) (*entities.FarmerProfile, error) {
	_, err := u.farmerRepo.GetByUserID(ctx, userID)
	if err == nil {
		return nil, domainerrors.AlreadyExists("Profile already exists")
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	profile := &entities.FarmerProfile{
		UserID:    userID,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     email,
		Phone:     input.Phone,
		Address:   input.Address,
	}

	if err := u.farmerRepo.Create(ctx, profile); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return nil, domainerrors.AlreadyExists("Profile already exists")
		}
		return nil, err
	}
	return profile, nil
}

// Get returns the caller's profile
func (u *FarmerUsecase) Get(ctx context.Context, userID uuid.UUID) (*entities.FarmerProfile, error) {
	profile, err := u.farmerRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Profile not found")
		}
		return nil, err
	}
	return profile, nil
}

// Update applies a partial update to the caller's profile. Only fields
// present in the input are replaced; a missing profile is never upserted.
func (u *FarmerUsecase) Update(ctx context.Context, userID uuid.UUID, input *entities.UpdateFarmerProfileInput) (*entities.FarmerProfile, error) {
	profile, err := u.farmerRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Profile not found")
		}
		return nil, err
	}

	if input.FirstName != nil {
		profile.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		profile.LastName = *input.LastName
	}
	if input.Phone != nil {
		profile.Phone = *input.Phone
	}
	if input.Address != nil {
		profile.Address = *input.Address
	}

	if err := u.farmerRepo.Update(ctx, profile); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Profile not found")
		}
		return nil, err
	}
	return profile, nil
}
