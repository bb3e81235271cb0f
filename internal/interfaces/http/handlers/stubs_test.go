package handlers

import (
	"context"
	"time"

	"agrioptimize.backend/internal/domain/entities"
	domainerrors "agrioptimize.backend/internal/domain/errors"
	"agrioptimize.backend/internal/interfaces/http/middleware"
	"agrioptimize.backend/pkg/jwt"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// asUser injects an authenticated identity the way AuthMiddleware would
func asUser(userID uuid.UUID, email string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, userID)
		c.Set(middleware.UserEmailKey, email)
		c.Next()
	}
}

func testJWTService() *jwt.JWTService {
	return jwt.NewJWTService("test-secret-at-least-32-chars-long!!", time.Hour)
}

type userRepoStub struct {
	users map[uuid.UUID]*entities.User
}

func newUserRepoStub() *userRepoStub {
	return &userRepoStub{users: map[uuid.UUID]*entities.User{}}
}

func (s *userRepoStub) Create(_ context.Context, user *entities.User) error {
	for _, u := range s.users {
		if u.Email == user.Email || u.SubjectID == user.SubjectID {
			return domainerrors.ErrAlreadyExists
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.SubjectID == "" {
		user.SubjectID = user.ID.String()
	}
	cp := *user
	s.users[user.ID] = &cp
	return nil
}

func (s *userRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.User, error) {
	if u, ok := s.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, domainerrors.ErrNotFound
}

func (s *userRepoStub) GetByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *userRepoStub) GetBySubjectID(_ context.Context, subjectID string) (*entities.User, error) {
	for _, u := range s.users {
		if u.SubjectID == subjectID {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *userRepoStub) Update(_ context.Context, user *entities.User) error {
	if _, ok := s.users[user.ID]; !ok {
		return domainerrors.ErrNotFound
	}
	cp := *user
	s.users[user.ID] = &cp
	return nil
}

func (s *userRepoStub) TouchLastLogin(_ context.Context, id uuid.UUID) error {
	if _, ok := s.users[id]; !ok {
		return domainerrors.ErrNotFound
	}
	return nil
}

type farmerRepoStub struct {
	profiles map[uuid.UUID]*entities.FarmerProfile
}

func newFarmerRepoStub() *farmerRepoStub {
	return &farmerRepoStub{profiles: map[uuid.UUID]*entities.FarmerProfile{}}
}

func (s *farmerRepoStub) Create(_ context.Context, profile *entities.FarmerProfile) error {
	if _, ok := s.profiles[profile.UserID]; ok {
		return domainerrors.ErrAlreadyExists
	}
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	cp := *profile
	s.profiles[profile.UserID] = &cp
	return nil
}

func (s *farmerRepoStub) GetByUserID(_ context.Context, userID uuid.UUID) (*entities.FarmerProfile, error) {
	if p, ok := s.profiles[userID]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, domainerrors.ErrNotFound
}

func (s *farmerRepoStub) Update(_ context.Context, profile *entities.FarmerProfile) error {
	if _, ok := s.profiles[profile.UserID]; !ok {
		return domainerrors.ErrNotFound
	}
	cp := *profile
	s.profiles[profile.UserID] = &cp
	return nil
}

type farmInfoRepoStub struct {
	infos map[uuid.UUID]*entities.FarmInfo
}

func newFarmInfoRepoStub() *farmInfoRepoStub {
	return &farmInfoRepoStub{infos: map[uuid.UUID]*entities.FarmInfo{}}
}

func (s *farmInfoRepoStub) Create(_ context.Context, info *entities.FarmInfo) error {
	if _, ok := s.infos[info.UserID]; ok {
		return domainerrors.ErrAlreadyExists
	}
	if info.ID == uuid.Nil {
		info.ID = uuid.New()
	}
	cp := *info
	s.infos[info.UserID] = &cp
	return nil
}

func (s *farmInfoRepoStub) GetByUserID(_ context.Context, userID uuid.UUID) (*entities.FarmInfo, error) {
	if i, ok := s.infos[userID]; ok {
		cp := *i
		return &cp, nil
	}
	return nil, domainerrors.ErrNotFound
}

func (s *farmInfoRepoStub) Update(_ context.Context, info *entities.FarmInfo) error {
	if _, ok := s.infos[info.UserID]; !ok {
		return domainerrors.ErrNotFound
	}
	cp := *info
	s.infos[info.UserID] = &cp
	return nil
}

type conversationStoreStub struct {
	histories map[uuid.UUID][]entities.ConversationTurn
}

func newConversationStoreStub() *conversationStoreStub {
	return &conversationStoreStub{histories: map[uuid.UUID][]entities.ConversationTurn{}}
}

func (s *conversationStoreStub) History(_ context.Context, userID uuid.UUID) ([]entities.ConversationTurn, error) {
	return s.histories[userID], nil
}

func (s *conversationStoreStub) Append(_ context.Context, userID uuid.UUID, turns ...entities.ConversationTurn) error {
	s.histories[userID] = append(s.histories[userID], turns...)
	return nil
}

func (s *conversationStoreStub) Clear(_ context.Context, userID uuid.UUID) error {
	delete(s.histories, userID)
	return nil
}

type weatherStub struct {
	report *entities.WeatherReport
	raw    []byte
	err    error
}

func (w *weatherStub) Current(_ context.Context, _ string) (*entities.WeatherReport, error) {
	if w.err != nil {
		return nil, w.err
	}
	return w.report, nil
}

func (w *weatherStub) Raw(_ context.Context, _ string) ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	return w.raw, nil
}

type generatorStub struct {
	reply string
	err   error
}

func (g *generatorStub) Generate(_ context.Context, _ []entities.ConversationTurn, _ string) (string, error) {
	if g.err != nil {
		return "", g.err
	}
	return g.reply, nil
}
