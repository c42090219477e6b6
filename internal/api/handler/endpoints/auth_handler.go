package endpoints

import (
	"net/http"

	"jobboard"
	"jobboard/internal/api/handler/middleware"
	"jobboard/internal/api/handler/request"
	"jobboard/internal/api/handler/response"
	"jobboard/internal/api/service"
	"jobboard/pkg"

	"github.com/gin-contrib/graceful"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

type authHandler struct {
	userService *service.UserService
	logger      zerolog.Logger
	config      jobboard.AppConfig
	redis       *redis.Client
}

func newAuthHandler(userService *service.UserService, redisClient *redis.Client) *authHandler {
	return &authHandler{
		userService: userService,
		logger:      jobboard.Logger,
		config:      jobboard.GetConfig(),
		redis:       redisClient,
	}
}

func AuthHandler(router *graceful.Graceful, userService *service.UserService, redisClient *redis.Client) {
	h := newAuthHandler(userService, redisClient)

	auth := router.Group("/api/v1/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", h.login)
		auth.POST("/refresh", h.refreshToken)
		auth.POST("/forgot-password", h.forgotPassword)
		auth.POST("/reset-password/:token", h.resetPassword)
	}

	protected := router.Group("/api/v1")
	protected.Use(middleware.AuthMiddleware(h.config, h.redis))
	{
		protected.GET("/me", h.getMe)
		protected.PUT("/me", h.updateProfile)
		protected.PUT("/me/password", h.updatePassword)
		protected.POST("/auth/logout", h.logout)
	}
}

func (slf *authHandler) register(c *gin.Context) {
	var registerDTO request.RegisterDTO

	err := pkg.ParseAndValidate(c, &registerDTO)
	if err != nil {
		slf.logger.Error().Err(err).Msg("Error parsing and validating register DTO")
		c.JSON(http.StatusBadRequest, response.APIError{Message: err.Error()})
		return
	}

	authResponse, err := slf.userService.Register(registerDTO)
	if err != nil {
		slf.logger.Error().Err(err).Msg("Error registering user")
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, authResponse)
}

func (slf *authHandler) login(c *gin.Context) {
	var loginDTO request.LoginDTO
	err := pkg.ParseAndValidate(c, &loginDTO)
	if err != nil {
		slf.logger.Error().Err(err).Msg("Error parsing and validating login DTO")
		c.JSON(http.StatusBadRequest, response.APIError{Message: err.Error()})
		return
	}

	authResponse, err := slf.userService.Login(loginDTO)
	if err != nil {
		slf.logger.Error().Err(err).Msg("Error logging in user")
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, authResponse)
}

func (slf *authHandler) refreshToken(c *gin.Context) {
	var refreshDTO request.RefreshTokenDTO
	err := pkg.ParseAndValidate(c, &refreshDTO)
	if err != nil {
		slf.logger.Error().Err(err).Msg("Error parsing and validating refresh token DTO")
		c.JSON(http.StatusBadRequest, response.APIError{Message: err.Error()})
		return
	}

	authResponse, err := slf.userService.RefreshToken(refreshDTO.RefreshToken)
	if err != nil {
		slf.logger.Error().Err(err).Msg("Error refreshing token")
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, authResponse)
}

func (slf *authHandler) forgotPassword(c *gin.Context) {
	var dto request.ForgotPasswordDTO
	if err := pkg.ParseAndValidate(c, &dto); err != nil {
		c.JSON(http.StatusBadRequest, response.APIError{Message: err.Error()})
		return
	}

	if err := slf.userService.ForgotPassword(dto.Email); err != nil {
		slf.logger.Error().Err(err).Msg("Error handling forgot password")
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "If that account exists, a reset email has been sent"})
}

func (slf *authHandler) resetPassword(c *gin.Context) {
	var dto request.ResetPasswordDTO
	if err := pkg.ParseAndValidate(c, &dto); err != nil {
		c.JSON(http.StatusBadRequest, response.APIError{Message: err.Error()})
		return
	}

	if err := slf.userService.ResetPassword(c.Param("token"), dto.Password); err != nil {
		slf.logger.Error().Err(err).Msg("Error resetting password")
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password has been reset"})
}

func (slf *authHandler) getMe(c *gin.Context) {
	userID, ok := pkg.GetUserID(c)
	if !ok {
		return
	}

	user, err := slf.userService.GetByID(userID)
	if err != nil {
		slf.logger.Error().Err(err).Uint("userId", userID).Msg("Error getting user")
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (slf *authHandler) updateProfile(c *gin.Context) {
	userID, ok := pkg.GetUserID(c)
	if !ok {
		return
	}

	var dto request.UpdateProfileDTO
	if err := pkg.ParseAndValidate(c, &dto); err != nil {
		c.JSON(http.StatusBadRequest, response.APIError{Message: err.Error()})
		return
	}

	user, err := slf.userService.UpdateProfile(userID, dto)
	if err != nil {
		slf.logger.Error().Err(err).Uint("userId", userID).Msg("Error updating profile")
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (slf *authHandler) updatePassword(c *gin.Context) {
	userID, ok := pkg.GetUserID(c)
	if !ok {
		return
	}

	var dto request.UpdatePasswordDTO
	if err := pkg.ParseAndValidate(c, &dto); err != nil {
		c.JSON(http.StatusBadRequest, response.APIError{Message: err.Error()})
		return
	}

	if err := slf.userService.UpdatePassword(userID, dto); err != nil {
		slf.logger.Error().Err(err).Uint("userId", userID).Msg("Error updating password")
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
}

func (slf *authHandler) logout(c *gin.Context) {
	userID, ok := pkg.GetUserID(c)
	if !ok {
		return
	}

	token := c.GetString("accessToken")
	claims, _ := c.Get("claims")
	parsed, _ := claims.(*pkg.Claims)

	if err := slf.userService.Logout(userID, token, parsed); err != nil {
		slf.logger.Error().Err(err).Uint("userId", userID).Msg("Error logging out")
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
