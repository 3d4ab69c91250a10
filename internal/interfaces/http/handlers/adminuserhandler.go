package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"punchcard/internal/application/user/usecases"
	"punchcard/internal/shared/logger"
	"punchcard/internal/shared/utils"
)

type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

type UpdateUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
}

// AdminUserHandler handles the admin user-management HTTP requests
type AdminUserHandler struct {
	listUseCase   usecases.ListUsersExecutor
	createUseCase usecases.CreateUserExecutor
	updateUseCase usecases.UpdateUserExecutor
	toggleUseCase usecases.ToggleActiveExecutor
	deleteUseCase usecases.DeleteUserExecutor
	logger        logger.Interface
}

func NewAdminUserHandler(
	listUseCase usecases.ListUsersExecutor,
	createUseCase usecases.CreateUserExecutor,
	updateUseCase usecases.UpdateUserExecutor,
	toggleUseCase usecases.ToggleActiveExecutor,
	deleteUseCase usecases.DeleteUserExecutor,
) *AdminUserHandler {
	return &AdminUserHandler{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		toggleUseCase: toggleUseCase,
		deleteUseCase: deleteUseCase,
		logger:        logger.NewLogger(),
	}
}

// ListUsers handles GET /api/admin/users
func (h *AdminUserHandler) ListUsers(c *gin.Context) {
	result, err := h.listUseCase.Execute(c.Request.Context(), usecases.ListUsersCommand{})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.Users)
}

// CreateUser handles POST /api/admin/users
func (h *AdminUserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid create user request body", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "username, email and password are required")
		return
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), usecases.CreateUserCommand{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result.User, "user created successfully")
}

// UpdateUser handles PATCH /api/admin/users/:id
func (h *AdminUserHandler) UpdateUser(c *gin.Context) {
	actorID, ok := currentUserID(c)
	if !ok {
		return
	}

	targetID, ok := h.targetUserID(c)
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid update user request body", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.updateUseCase.Execute(c.Request.Context(), usecases.UpdateUserCommand{
		UserID:   targetID,
		ActorID:  actorID,
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "user updated successfully", result.User)
}

// ToggleActive handles POST /api/admin/users/:id/toggle-active
func (h *AdminUserHandler) ToggleActive(c *gin.Context) {
	actorID, ok := currentUserID(c)
	if !ok {
		return
	}

	targetID, ok := h.targetUserID(c)
	if !ok {
		return
	}

	result, err := h.toggleUseCase.Execute(c.Request.Context(), usecases.ToggleActiveCommand{
		UserID:  targetID,
		ActorID: actorID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "user updated successfully", result.User)
}

// DeleteUser handles DELETE /api/admin/users/:id
func (h *AdminUserHandler) DeleteUser(c *gin.Context) {
	actorID, ok := currentUserID(c)
	if !ok {
		return
	}

	targetID, ok := h.targetUserID(c)
	if !ok {
		return
	}

	err := h.deleteUseCase.Execute(c.Request.Context(), usecases.DeleteUserCommand{
		UserID:  targetID,
		ActorID: actorID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "user deleted successfully", nil)
}

func (h *AdminUserHandler) targetUserID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid user ID")
		return 0, false
	}
	return uint(id), true
}
