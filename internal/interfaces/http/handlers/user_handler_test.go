package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"agrioptimize.backend/internal/domain/entities"
	"agrioptimize.backend/internal/interfaces/http/middleware"
	"agrioptimize.backend/internal/usecases"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func setupUserRouter(authedUser uuid.UUID) (*gin.Engine, *userRepoStub) {
	gin.SetMode(gin.TestMode)
	repo := newUserRepoStub()
	h := NewUserHandler(usecases.NewUserUsecase(repo, testJWTService()))

	r := gin.New()
	r.POST("/api/users/register", h.Register)
	r.GET("/api/users/profile", asUser(authedUser, "user@example.com"), h.Profile)
	return r, repo
}

type registerResponse struct {
	AccessToken string `json:"accessToken"`
	User        struct {
		ID        uuid.UUID `json:"id"`
		SubjectID string    `json:"subjectId"`
		FirstName string    `json:"firstName"`
	} `json:"user"`
}

func registerPayload(subjectID string) map[string]any {
	return map[string]any{
		"subjectId": subjectID,
		"email":     "ravi@example.com",
		"firstName": "Ravi",
		"lastName":  "Sharma",
		"farmName":  "Sharma Farm",
	}
}

func TestUserHandler_RegisterCreatesThenUpdates(t *testing.T) {
	r, _ := setupUserRouter(uuid.New())

	rec := postJSON(r, "/api/users/register", registerPayload("firebase-uid-1"), nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}

	var first registerResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &first); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if first.User.SubjectID != "firebase-uid-1" {
		t.Fatalf("unexpected subject id: %s", first.User.SubjectID)
	}
	if first.AccessToken == "" {
		t.Fatal("expected an access token in register response")
	}

	payload := registerPayload("firebase-uid-1")
	payload["firstName"] = "Ravindra"
	rec = postJSON(r, "/api/users/register", payload, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on upsert, got %d body=%s", rec.Code, rec.Body.String())
	}

	var second registerResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &second); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if second.User.ID != first.User.ID {
		t.Fatalf("upsert created a new user: %s != %s", second.User.ID, first.User.ID)
	}
	if second.User.FirstName != "Ravindra" {
		t.Fatalf("expected refreshed first name, got %s", second.User.FirstName)
	}
}

func TestUserHandler_RegisterTokenReachesProfile(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := newUserRepoStub()
	jwtService := testJWTService()
	h := NewUserHandler(usecases.NewUserUsecase(repo, jwtService))

	r := gin.New()
	r.POST("/api/users/register", h.Register)
	r.GET("/api/users/profile", middleware.AuthMiddleware(jwtService), h.Profile)

	rec := postJSON(r, "/api/users/register", registerPayload("firebase-uid-5"), nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}

	var created registerResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/users/profile", nil)
	req.Header.Set("Authorization", "Bearer "+created.AccessToken)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with register token, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), created.User.ID.String()) {
		t.Fatalf("profile body missing user id: %s", rec.Body.String())
	}
}

func TestUserHandler_RegisterValidation(t *testing.T) {
	r, _ := setupUserRouter(uuid.New())

	payload := registerPayload("firebase-uid-2")
	delete(payload, "subjectId")
	rec := postJSON(r, "/api/users/register", payload, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestUserHandler_Profile(t *testing.T) {
	userID := uuid.New()
	r, repo := setupUserRouter(userID)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/profile", nil)
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown user, got %d", rec.Code)
	}

	repo.users[userID] = &entities.User{
		ID:        userID,
		SubjectID: userID.String(),
		Email:     "user@example.com",
		FirstName: "Asha",
		LastName:  "Patel",
	}
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), userID.String()) {
		t.Fatalf("body missing user id: %s", rec.Body.String())
	}
}
