package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/markbates/goth/gothic"

	"codeberg.org/licitgov/server/internal/auth"
	apperrors "codeberg.org/licitgov/server/internal/errors"
	"codeberg.org/licitgov/server/internal/logger"
	"codeberg.org/licitgov/server/licitgov/users"
)

const (
	msgInvalidCredentials = "Credenciais inválidas. Verifique e-mail e senha."
	msgAccountDeactivated = "Conta desativada pelo administrador."
)

// LoginHandler godoc
// @Summary Login with email and password
// @Description Authenticate with email+password. Returns user data and JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} AuthResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/v1/auth/login [post]
func LoginHandler(userRepo *users.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			apperrors.ValidationError(c, err)
			return
		}

		user, err := userRepo.FindByEmail(c.Request.Context(), req.Email)
		if err != nil {
			if errors.Is(err, users.ErrNotFound) {
				apperrors.Unauthorized(c, msgInvalidCredentials)
				return
			}
			apperrors.InternalError(c, "failed to look up user", err)
			return
		}

		if !user.CheckPassword(req.Password) {
			apperrors.Unauthorized(c, msgInvalidCredentials)
			return
		}

		if !user.Active {
			apperrors.Forbidden(c, msgAccountDeactivated)
			return
		}

		token, err := auth.GenerateJWT(user.ID, user.Email, user.IsAdmin())
		if err != nil {
			apperrors.InternalError(c, "failed to generate token", err)
			return
		}

		logger.Info("user logged in", "user_id", user.ID)

		c.JSON(http.StatusOK, AuthResponse{
			User:  user,
			Token: token,
		})
	}
}

// BeginAuthHandler godoc
// @Summary Start OAuth authentication
// @Description Begin OAuth authentication flow with specified provider (google)
// @Tags auth
// @Param provider path string true "OAuth provider" Enums(google)
// @Success 302 {string} string "Redirect to OAuth provider"
// @Failure 400 {object} errors.ErrorResponse
// @Router /api/v1/auth/{provider} [get]
func BeginAuthHandler(_ *users.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		provider := c.Param("provider")

		if provider != "google" {
			apperrors.BadRequest(c, "invalid provider", nil)
			return
		}

		// set provider in query for gothic
		q := c.Request.URL.Query()
		q.Add("provider", provider)
		c.Request.URL.RawQuery = q.Encode()

		gothic.BeginAuthHandler(c.Writer, c.Request)
	}
}

// CallbackHandler godoc
// @Summary OAuth callback
// @Description OAuth provider callback. Returns user data and JWT token
// @Tags auth
// @Produce json
// @Param provider path string true "OAuth provider" Enums(google)
// @Success 200 {object} AuthResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/auth/{provider}/callback [get]
func CallbackHandler(userRepo *users.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		provider := c.Param("provider")

		q := c.Request.URL.Query()
		q.Add("provider", provider)
		c.Request.URL.RawQuery = q.Encode()

		gothUser, err := gothic.CompleteUserAuth(c.Writer, c.Request)
		if err != nil {
			apperrors.InternalError(c, "authentication failed", err)
			return
		}

		user, err := userRepo.FindOrCreateByProvider(
			c.Request.Context(),
			gothUser.Provider,
			gothUser.UserID,
			gothUser.Email,
			gothUser.Name,
		)

		if err != nil {
			apperrors.InternalError(c, "failed to create user", err)
			return
		}

		if !user.Active {
			apperrors.Forbidden(c, msgAccountDeactivated)
			return
		}

		token, err := auth.GenerateJWT(user.ID, user.Email, user.IsAdmin())
		if err != nil {
			apperrors.InternalError(c, "failed to generate token", err)
			return
		}

		c.JSON(http.StatusOK, AuthResponse{
			User:  user,
			Token: token,
		})
	}
}

// GetCurrentUserHandler godoc
// @Summary Get current user
// @Description Get authenticated user's profile
// @Tags auth
// @Produce json
// @Success 200 {object} UserResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/auth/me [get]
// @Security BearerAuth
func GetCurrentUserHandler(userRepo *users.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)

		if !exists {
			apperrors.Unauthorized(c, "")
			return
		}

		user, err := userRepo.FindByID(c.Request.Context(), userID)
		if err != nil {
			apperrors.NotFound(c, "user")
			return
		}

		c.JSON(http.StatusOK, UserResponse{User: user})
	}
}

// LogoutHandler godoc
// @Summary Logout
// @Description Clear authentication session
// @Tags auth
// @Produce json
// @Success 200 {object} MessageResponse
// @Router /api/v1/auth/logout [post]
func LogoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := gothic.Logout(c.Writer, c.Request); err != nil {
			logger.Debug("no gothic session to clear", "error", err.Error())
		}
		c.JSON(http.StatusOK, MessageResponse{Message: "logged out successfully"})
	}
}
