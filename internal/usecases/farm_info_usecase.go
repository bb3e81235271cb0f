package usecases

import (
	"context"
	"errors"

	"agrioptimize.backend/internal/domain/entities"
	domainerrors "agrioptimize.backend/internal/domain/errors"
	"agrioptimize.backend/internal/domain/repositories"
	"github.com/google/uuid"
)

// WeatherProvider fetches current weather for a location
type WeatherProvider interface {
	Current(ctx context.Context, location string) (*entities.WeatherReport, error)
	Raw(ctx context.Context, location string) ([]byte, error)
}

// FarmInfoUsecase handles farm info business logic
type FarmInfoUsecase struct {
	farmInfoRepo repositories.FarmInfoRepository
	weather      WeatherProvider
}

// NewFarmInfoUsecase creates a new farm info usecase
func NewFarmInfoUsecase(farmInfoRepo repositories.FarmInfoRepository, weather WeatherProvider) *FarmInfoUsecase {
	return &FarmInfoUsecase{
		farmInfoRepo: farmInfoRepo,
		weather:      weather,
	}
}

// Create creates the caller's farm info record
func (u *FarmInfoUsecase) Create(ctx context.Context, userID uuid.UUID, input *entities.CreateFarmInfoInput) (*entities.FarmInfo, error) {
	season := entities.Season(input.Season)
	if !entities.ValidSeason(season) {
		return nil, domainerrors.BadRequest("invalid season: must be Rabi, Kharif or Zaid")
	}
	farmingType := entities.FarmingType(input.FarmingType)
	if !entities.ValidFarmingType(farmingType) {
		return nil, domainerrors.BadRequest("invalid farming type: must be Traditional, Modern, Organic or Mixed")
	}

	_, err := u.farmInfoRepo.GetByUserID(ctx, userID)
	if err == nil {
		return nil, domainerrors.AlreadyExists("Farm info already exists")
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	info := &entities.FarmInfo{
		UserID:      userID,
		CropType:    input.CropType,
		LandArea:    input.LandArea,
		Season:      season,
		Location:    input.Location,
		FarmingType: farmingType,
		SoilType:    input.SoilType,
	}

	if err := u.farmInfoRepo.Create(ctx, info); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return nil, domainerrors.AlreadyExists("Farm info already exists")
		}
		return nil, err
	}
	return info, nil
}

// Get returns the caller's farm info
func (u *FarmInfoUsecase) Get(ctx context.Context, userID uuid.UUID) (*entities.FarmInfo, error) {
	info, err := u.farmInfoRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Farm info not found")
		}
		return nil, err
	}
	return info, nil
}

// Update applies a partial update to the caller's farm info. Only fields
// present in the input are replaced; enum fields are validated when present.
func (u *FarmInfoUsecase) Update(ctx context.Context, userID uuid.UUID, input *entities.UpdateFarmInfoInput) (*entities.FarmInfo, error) {
	info, err := u.farmInfoRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Farm info not found")
		}
		return nil, err
	}

	if input.Season != nil {
		season := entities.Season(*input.Season)
		if !entities.ValidSeason(season) {
			return nil, domainerrors.BadRequest("invalid season: must be Rabi, Kharif or Zaid")
		}
		info.Season = season
	}
	if input.FarmingType != nil {
		farmingType := entities.FarmingType(*input.FarmingType)
		if !entities.ValidFarmingType(farmingType) {
			return nil, domainerrors.BadRequest("invalid farming type: must be Traditional, Modern, Organic or Mixed")
		}
		info.FarmingType = farmingType
	}
	if input.CropType != nil {
		info.CropType = *input.CropType
	}
	if input.LandArea != nil {
		info.LandArea = *input.LandArea
	}
	if input.Location != nil {
		info.Location = *input.Location
	}
	if input.SoilType != nil {
		info.SoilType = *input.SoilType
	}

	if err := u.farmInfoRepo.Update(ctx, info); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Farm info not found")
		}
		return nil, err
	}
	return info, nil
}

// Weather returns the provider's current-weather payload for the caller's
// stored farm location. The stored location is validated before any
// upstream call.
func (u *FarmInfoUsecase) Weather(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	info, err := u.farmInfoRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Farm info not found")
		}
		return nil, err
	}

	if info.Location == "" {
		return nil, domainerrors.BadRequest("farm location is not set")
	}

	body, err := u.weather.Raw(ctx, info.Location)
	if err != nil {
		if errors.Is(err, domainerrors.ErrInvalidInput) {
			return nil, domainerrors.BadRequest("farm location is not set")
		}
		return nil, err
	}
	return body, nil
}
