package handlers

import (
	"net/http"

	"agrioptimize.backend/internal/domain/entities"
	domainerrors "agrioptimize.backend/internal/domain/errors"
	"agrioptimize.backend/internal/interfaces/http/middleware"
	"agrioptimize.backend/internal/interfaces/http/response"
	"agrioptimize.backend/internal/usecases"
	"github.com/gin-gonic/gin"
)

// FarmerHandler handles farmer profile endpoints
type FarmerHandler struct {
	farmerUsecase *usecases.FarmerUsecase
}

// NewFarmerHandler creates a new farmer handler
func NewFarmerHandler(farmerUsecase *usecases.FarmerUsecase) *FarmerHandler {
	return &FarmerHandler{farmerUsecase: farmerUsecase}
}

// Create handles POST /api/farmers
func (h *FarmerHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized. Token missing."))
		return
	}
	email, _ := middleware.GetUserEmail(c)

	var input entities.CreateFarmerProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	profile, err := h.farmerUsecase.Create(c.Request.Context(), userID, email, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, profile)
}

// GetMe handles GET /api/farmers/me
func (h *FarmerHandler) GetMe(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized. Token missing."))
		return
	}

	profile, err := h.farmerUsecase.Get(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, profile)
}

// UpdateMe handles PUT /api/farmers/me
func (h *FarmerHandler) UpdateMe(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized. Token missing."))
		return
	}

	var input entities.UpdateFarmerProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	profile, err := h.farmerUsecase.Update(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, profile)
}
