package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"punchcard/internal/application/user/usecases"
	"punchcard/internal/shared/logger"
	"punchcard/internal/shared/utils"
)

// ProfileHandler handles the authenticated user's own profile
type ProfileHandler struct {
	getProfileUseCase usecases.GetProfileExecutor
	logger            logger.Interface
}

func NewProfileHandler(getProfileUseCase usecases.GetProfileExecutor) *ProfileHandler {
	return &ProfileHandler{
		getProfileUseCase: getProfileUseCase,
		logger:            logger.NewLogger(),
	}
}

// GetProfile handles GET /api/profile
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	result, err := h.getProfileUseCase.Execute(c.Request.Context(), usecases.GetProfileCommand{UserID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.User)
}
