package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bank-user-service/internal/usecase/user"
	apperrors "bank-user-service/pkg/errors"
	"bank-user-service/pkg/logger"
)

// UserHandler handles HTTP requests for user operations.
// Errors are attached to the gin context and rendered by the error middleware.
type UserHandler struct {
	uc  user.Usecase
	log *zap.Logger
}

// NewUserHandler creates a new UserHandler instance
func NewUserHandler(uc user.Usecase, log *zap.Logger) *UserHandler {
	registerValidators()
	return &UserHandler{
		uc:  uc,
		log: log,
	}
}

// parseID reads the :id path parameter as a positive integer.
func parseID(c *gin.Context) (int64, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewInvalidArgumentError("User ID must be a positive number")
	}
	return id, nil
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.uc.GetAllUsers(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// GetUser handles GET /users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		logger.WithContext(c.Request.Context(), h.log).Warn("invalid user id", zap.String("id", c.Param("id")))
		_ = c.Error(err)
		return
	}

	resp, err := h.uc.GetUserByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req user.UserRequest
	if err := bindJSON(c, &req); err != nil {
		logger.WithContext(c.Request.Context(), h.log).Warn("invalid create user request",
			zap.Error(err),
			zap.NamedError("cause", errors.Unwrap(err)),
		)
		_ = c.Error(err)
		return
	}

	resp, err := h.uc.CreateNewUser(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// UpdateUser handles PUT /users/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		logger.WithContext(c.Request.Context(), h.log).Warn("invalid user id", zap.String("id", c.Param("id")))
		_ = c.Error(err)
		return
	}

	var req user.UserRequest
	if err := bindJSON(c, &req); err != nil {
		logger.WithContext(c.Request.Context(), h.log).Warn("invalid update user request",
			zap.Int64("id", id),
			zap.Error(err),
			zap.NamedError("cause", errors.Unwrap(err)),
		)
		_ = c.Error(err)
		return
	}

	resp, err := h.uc.UpdateUser(c.Request.Context(), id, req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteUser handles DELETE /users/:id. It succeeds whether or not the user existed.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		logger.WithContext(c.Request.Context(), h.log).Warn("invalid user id", zap.String("id", c.Param("id")))
		_ = c.Error(err)
		return
	}

	if err := h.uc.DeleteUser(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusOK)
}
