package usecases

import (
	"context"
	"errors"

	"agrioptimize.backend/internal/domain/entities"
	domainerrors "agrioptimize.backend/internal/domain/errors"
	"agrioptimize.backend/internal/domain/repositories"
	"agrioptimize.backend/pkg/jwt"
	"github.com/google/uuid"
)

// UserUsecase handles the identity-provider sign-in flow and profile reads
type UserUsecase struct {
	userRepo   repositories.UserRepository
	jwtService *jwt.JWTService
}

// NewUserUsecase creates a new user usecase
func NewUserUsecase(userRepo repositories.UserRepository, jwtService *jwt.JWTService) *UserUsecase {
	return &UserUsecase{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Register upserts a user by provider subject id and issues an access token,
// so both sign-in paths end with the same UUID-subject credential. The first
// sign-in creates the row; later sign-ins refresh the profile fields and keep
// CreatedAt and SubjectID. The returned bool is true when a new user was
// created.
func (u *UserUsecase) Register(ctx context.Context, input *entities.RegisterUserInput) (*entities.AuthResponse, bool, error) {
	existing, err := u.userRepo.GetBySubjectID(ctx, input.SubjectID)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, false, err
	}

	if existing != nil {
		existing.Email = input.Email
		existing.FirstName = input.FirstName
		existing.LastName = input.LastName
		if input.FarmName != "" {
			existing.FarmName = input.FarmName
		}
		if input.FarmSize != "" {
			existing.FarmSize = input.FarmSize
		}
		if input.PhotoURL != "" {
			existing.PhotoURL = input.PhotoURL
		}
		if err := u.userRepo.Update(ctx, existing); err != nil {
			return nil, false, err
		}
		token, err := u.jwtService.GenerateToken(existing.ID, existing.Email)
		if err != nil {
			return nil, false, err
		}
		return &entities.AuthResponse{AccessToken: token, User: existing}, false, nil
	}

	user := &entities.User{
		SubjectID: input.SubjectID,
		Email:     input.Email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		FarmName:  input.FarmName,
		FarmSize:  input.FarmSize,
		PhotoURL:  input.PhotoURL,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return nil, false, domainerrors.AlreadyExists("user already exists")
		}
		return nil, false, err
	}
	token, err := u.jwtService.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, false, err
	}
	return &entities.AuthResponse{AccessToken: token, User: user}, true, nil
}

// GetProfile returns the caller's own account
func (u *UserUsecase) GetProfile(ctx context.Context, userID uuid.UUID) (*entities.User, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("user not found")
		}
		return nil, err
	}
	return user, nil
}
