package usecases

import (
	"context"
	"errors"
	"fmt"

	"agrioptimize.backend/internal/domain/entities"
	domainerrors "agrioptimize.backend/internal/domain/errors"
	"agrioptimize.backend/internal/domain/repositories"
	"agrioptimize.backend/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// weatherUnavailable substitutes for the live report when the provider
// cannot be reached. Assistant replies are never blocked on weather.
const weatherUnavailable = "Live weather unavailable."

const personaPrompt = `You are AgriOptimize, an intelligent, data-driven agricultural assistant. You help farmers make better decisions based on weather forecasts, soil data, crop conditions and seasonal patterns.

%s

Your responsibilities:
- Provide tailored advice for:
  * Water optimization (based on current and forecasted weather, soil moisture)
  * Fertilizer application (based on crop stage, soil nutrients and crop type)
  * Pest and disease control (based on recent activity, season and regional risk)
  * Weather impact (advise actions based on rainfall, humidity, wind and temperature trends)
  * Farm performance tracking (efficiency, savings, yield potential)

Response style:
- Use **bold** for section headers and bullets for tips.
- Structure information clearly: start with a summary, followed by actionable insights.
- Keep your tone friendly, clear and practical, like an expert agronomist helping a farmer.

Boundaries:
- Stay focused on agriculture. Kindly decline off-topic questions.
- If the user's input lacks data (e.g. no crop type or field info), ask smart questions to fill the gap before giving advice.

Farmer's question: %s`

// TextGenerator produces a reply for a prompt given prior conversation turns
type TextGenerator interface {
	Generate(ctx context.Context, history []entities.ConversationTurn, prompt string) (string, error)
}

// AssistantUsecase handles assistant chat business logic
type AssistantUsecase struct {
	farmInfoRepo     repositories.FarmInfoRepository
	conversations    repositories.ConversationStore
	weather          WeatherProvider
	generator        TextGenerator
	fallbackLocation string
}

// NewAssistantUsecase creates a new assistant usecase
func NewAssistantUsecase(
	farmInfoRepo repositories.FarmInfoRepository,
	conversations repositories.ConversationStore,
	weather WeatherProvider,
	generator TextGenerator,
	fallbackLocation string,
) *AssistantUsecase {
	return &AssistantUsecase{
		farmInfoRepo:     farmInfoRepo,
		conversations:    conversations,
		weather:          weather,
		generator:        generator,
		fallbackLocation: fallbackLocation,
	}
}

// Chat answers the caller's message with live weather context and the
// caller's recent conversation history.
func (u *AssistantUsecase) Chat(ctx context.Context, userID uuid.UUID, input *entities.AssistantInput) (*entities.AssistantResponse, error) {
	location := u.resolveLocation(ctx, userID, input.Location)
	weatherContext := u.weatherContext(ctx, location)
	prompt := fmt.Sprintf(personaPrompt, weatherContext, input.Message)

	history, err := u.conversations.History(ctx, userID)
	if err != nil {
		logger.Warn(ctx, "failed to load conversation history", zap.Error(err))
		history = nil
	}

	reply, err := u.generator.Generate(ctx, history, prompt)
	if err != nil {
		logger.Error(ctx, "assistant generation failed", zap.Error(err))
		return nil, domainerrors.Upstream("Failed to get response from AI assistant")
	}

	if err := u.conversations.Append(ctx, userID,
		entities.ConversationTurn{Role: entities.TurnRoleUser, Text: input.Message},
		entities.ConversationTurn{Role: entities.TurnRoleModel, Text: reply},
	); err != nil {
		logger.Warn(ctx, "failed to store conversation history", zap.Error(err))
	}

	return &entities.AssistantResponse{Response: reply}, nil
}

// resolveLocation picks the request location, then the stored farm location,
// then the configured fallback.
func (u *AssistantUsecase) resolveLocation(ctx context.Context, userID uuid.UUID, requested string) string {
	if requested != "" {
		return requested
	}

	info, err := u.farmInfoRepo.GetByUserID(ctx, userID)
	if err == nil && info.Location != "" {
		return info.Location
	}
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		logger.Warn(ctx, "failed to load farm info for location", zap.Error(err))
	}
	return u.fallbackLocation
}

// weatherContext renders the live weather block, or the fixed placeholder
// when the provider fails.
func (u *AssistantUsecase) weatherContext(ctx context.Context, location string) string {
	report, err := u.weather.Current(ctx, location)
	if err != nil {
		logger.Warn(ctx, "weather fetch failed", zap.String("location", location), zap.Error(err))
		return weatherUnavailable
	}

	return fmt.Sprintf(`**Live Weather Report for %s:**
- Temperature: %g°C
- Humidity: %d%%
- Condition: %s
- Wind Speed: %g m/s
- Rainfall: %g mm (last hour)`,
		report.Location, report.Temperature, report.Humidity,
		report.Description, report.WindSpeed, report.Rainfall)
}
