package admin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "codeberg.org/licitgov/server/internal/errors"
	"codeberg.org/licitgov/server/internal/logger"
	"codeberg.org/licitgov/server/licitgov/documents"
	"codeberg.org/licitgov/server/licitgov/users"
)

// ListUsers godoc
// @Summary List all users (admin)
// @Description Admin-only endpoint listing every account, newest first. Password hashes are never included
// @Tags admin
// @Produce json
// @Success 200 {object} UsersResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /api/v1/admin/users [get]
// @Security BearerAuth
func ListUsers(userRepo *users.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := userRepo.List(c.Request.Context())
		if err != nil {
			apperrors.InternalError(c, "failed to list users", err)
			return
		}

		c.JSON(http.StatusOK, UsersResponse{Users: list})
	}
}

// CreateUser godoc
// @Summary Create a user account (admin)
// @Description Admin-only endpoint creating a new account with an initial password
// @Tags admin
// @Accept json
// @Produce json
// @Param request body users.CreateUserRequest true "New account"
// @Success 201 {object} UserResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /api/v1/admin/users [post]
// @Security BearerAuth
func CreateUser(userRepo *users.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req users.CreateUserRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			apperrors.ValidationError(c, err)
			return
		}

		user, err := userRepo.Create(c.Request.Context(), req)
		if err != nil {
			if errors.Is(err, users.ErrEmailTaken) {
				apperrors.Conflict(c, err.Error())
				return
			}
			apperrors.InternalError(c, "failed to create user", err)
			return
		}

		logger.Info("user created", "user_id", user.ID, "email", user.Email)

		c.JSON(http.StatusCreated, UserResponse{User: user})
	}
}

// ToggleUserStatus godoc
// @Summary Toggle a user's active flag (admin)
// @Description Admin-only endpoint flipping active/inactive. Admin accounts are left untouched
// @Tags admin
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} UserResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/admin/users/{id}/toggle [put]
// @Security BearerAuth
func ToggleUserStatus(userRepo *users.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("id")

		user, err := userRepo.ToggleActive(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, users.ErrNotFound) {
				apperrors.NotFound(c, "user")
				return
			}
			apperrors.InternalError(c, "failed to toggle user status", err)
			return
		}

		c.JSON(http.StatusOK, UserResponse{User: user})
	}
}

// DeleteUser godoc
// @Summary Delete a user (admin)
// @Description Admin-only endpoint removing an account. The primary admin cannot be deleted
// @Tags admin
// @Produce json
// @Param id path string true "User ID"
// @Success 204 {string} string ""
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/admin/users/{id} [delete]
// @Security BearerAuth
func DeleteUser(userRepo *users.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("id")

		err := userRepo.Delete(c.Request.Context(), userID)
		if err != nil {
			switch {
			case errors.Is(err, users.ErrNotFound):
				apperrors.NotFound(c, "user")
			case errors.Is(err, users.ErrProtectedAdmin):
				apperrors.Forbidden(c, err.Error())
			default:
				apperrors.InternalError(c, "failed to delete user", err)
			}
			return
		}

		logger.Info("user deleted", "user_id", userID)

		c.Status(http.StatusNoContent)
	}
}

// GetStats godoc
// @Summary Platform statistics (admin)
// @Description Admin-only aggregate counters: users, active users, generated documents
// @Tags admin
// @Produce json
// @Success 200 {object} StatsResponse
// @Router /api/v1/admin/stats [get]
// @Security BearerAuth
func GetStats(userRepo *users.Repository, docRepo *documents.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		total, active, err := userRepo.Count(c.Request.Context())
		if err != nil {
			apperrors.InternalError(c, "failed to count users", err)
			return
		}

		docCount, err := docRepo.CountAll(c.Request.Context())
		if err != nil {
			apperrors.InternalError(c, "failed to count documents", err)
			return
		}

		c.JSON(http.StatusOK, StatsResponse{
			TotalUsers:     total,
			ActiveUsers:    active,
			TotalDocuments: docCount,
		})
	}
}
