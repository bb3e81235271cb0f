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

// FarmInfoHandler handles farm info endpoints
type FarmInfoHandler struct {
	farmInfoUsecase *usecases.FarmInfoUsecase
}

// NewFarmInfoHandler creates a new farm info handler
func NewFarmInfoHandler(farmInfoUsecase *usecases.FarmInfoUsecase) *FarmInfoHandler {
	return &FarmInfoHandler{farmInfoUsecase: farmInfoUsecase}
}

// Create handles POST /api/farminfo
func (h *FarmInfoHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized. Token missing."))
		return
	}

	var input entities.CreateFarmInfoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	info, err := h.farmInfoUsecase.Create(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, info)
}

// GetMe handles GET /api/farminfo/me
func (h *FarmInfoHandler) GetMe(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized. Token missing."))
		return
	}

	info, err := h.farmInfoUsecase.Get(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, info)
}

// UpdateMe handles PUT /api/farminfo/me
func (h *FarmInfoHandler) UpdateMe(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized. Token missing."))
		return
	}

	var input entities.UpdateFarmInfoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	info, err := h.farmInfoUsecase.Update(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, info)
}

// Weather handles GET /api/farminfo/me/weather. The provider's JSON body is
// passed through unchanged.
func (h *FarmInfoHandler) Weather(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized. Token missing."))
		return
	}

	body, err := h.farmInfoUsecase.Weather(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Data(http.StatusOK, "application/json", body)
}
