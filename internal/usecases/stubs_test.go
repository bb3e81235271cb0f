package usecases

import (
	"context"
	"time"

	"agrioptimize.backend/internal/domain/entities"
	domainerrors "agrioptimize.backend/internal/domain/errors"
	"github.com/google/uuid"
)

type stubUserRepo struct {
	users map[uuid.UUID]*entities.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uuid.UUID]*entities.User)}
}

func (r *stubUserRepo) Create(ctx context.Context, user *entities.User) error {
	for _, u := range r.users {
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
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *stubUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, domainerrors.ErrNotFound
}

func (r *stubUserRepo) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (r *stubUserRepo) GetBySubjectID(ctx context.Context, subjectID string) (*entities.User, error) {
	for _, u := range r.users {
		if u.SubjectID == subjectID {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (r *stubUserRepo) Update(ctx context.Context, user *entities.User) error {
	stored, ok := r.users[user.ID]
	if !ok {
		return domainerrors.ErrNotFound
	}
	stored.Email = user.Email
	stored.FirstName = user.FirstName
	stored.LastName = user.LastName
	stored.FarmName = user.FarmName
	stored.FarmSize = user.FarmSize
	stored.PhotoURL = user.PhotoURL
	stored.OnboardingCompleted = user.OnboardingCompleted
	stored.UpdatedAt = time.Now()
	return nil
}

func (r *stubUserRepo) TouchLastLogin(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.users[id]; !ok {
		return domainerrors.ErrNotFound
	}
	return nil
}

type stubFarmerRepo struct {
	profiles map[uuid.UUID]*entities.FarmerProfile
}

func newStubFarmerRepo() *stubFarmerRepo {
	return &stubFarmerRepo{profiles: make(map[uuid.UUID]*entities.FarmerProfile)}
}

func (r *stubFarmerRepo) Create(ctx context.Context, profile *entities.FarmerProfile) error {
	if _, ok := r.profiles[profile.UserID]; ok {
		return domainerrors.ErrAlreadyExists
	}
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	cp := *profile
	r.profiles[profile.UserID] = &cp
	return nil
}

func (r *stubFarmerRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.FarmerProfile, error) {
	if p, ok := r.profiles[userID]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, domainerrors.ErrNotFound
}

func (r *stubFarmerRepo) Update(ctx context.Context, profile *entities.FarmerProfile) error {
	if _, ok := r.profiles[profile.UserID]; !ok {
		return domainerrors.ErrNotFound
	}
	cp := *profile
	r.profiles[profile.UserID] = &cp
	return nil
}

type stubFarmInfoRepo struct {
	infos map[uuid.UUID]*entities.FarmInfo
	err   error
}

func newStubFarmInfoRepo() *stubFarmInfoRepo {
	return &stubFarmInfoRepo{infos: make(map[uuid.UUID]*entities.FarmInfo)}
}

func (r *stubFarmInfoRepo) Create(ctx context.Context, info *entities.FarmInfo) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.infos[info.UserID]; ok {
		return domainerrors.ErrAlreadyExists
	}
	if info.ID == uuid.Nil {
		info.ID = uuid.New()
	}
	cp := *info
	r.infos[info.UserID] = &cp
	return nil
}

func (r *stubFarmInfoRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.FarmInfo, error) {
	if r.err != nil {
		return nil, r.err
	}
	if i, ok := r.infos[userID]; ok {
		cp := *i
		return &cp, nil
	}
	return nil, domainerrors.ErrNotFound
}

func (r *stubFarmInfoRepo) Update(ctx context.Context, info *entities.FarmInfo) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.infos[info.UserID]; !ok {
		return domainerrors.ErrNotFound
	}
	cp := *info
	r.infos[info.UserID] = &cp
	return nil
}

type stubConversationStore struct {
	histories map[uuid.UUID][]entities.ConversationTurn
	appendErr error
}

func newStubConversationStore() *stubConversationStore {
	return &stubConversationStore{histories: make(map[uuid.UUID][]entities.ConversationTurn)}
}

func (s *stubConversationStore) History(ctx context.Context, userID uuid.UUID) ([]entities.ConversationTurn, error) {
	return s.histories[userID], nil
}

func (s *stubConversationStore) Append(ctx context.Context, userID uuid.UUID, turns ...entities.ConversationTurn) error {
	if s.appendErr != nil {
		return s.appendErr
	}
	s.histories[userID] = append(s.histories[userID], turns...)
	return nil
}

func (s *stubConversationStore) Clear(ctx context.Context, userID uuid.UUID) error {
	delete(s.histories, userID)
	return nil
}

type stubWeather struct {
	report *entities.WeatherReport
	raw    []byte
	err    error
}

func (w *stubWeather) Current(ctx context.Context, location string) (*entities.WeatherReport, error) {
	if w.err != nil {
		return nil, w.err
	}
	return w.report, nil
}

func (w *stubWeather) Raw(ctx context.Context, location string) ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	return w.raw, nil
}

type stubGenerator struct {
	reply      string
	err        error
	gotHistory []entities.ConversationTurn
	gotPrompt  string
}

func (g *stubGenerator) Generate(ctx context.Context, history []entities.ConversationTurn, prompt string) (string, error) {
	g.gotHistory = history
	g.gotPrompt = prompt
	if g.err != nil {
		return "", g.err
	}
	return g.reply, nil
}
