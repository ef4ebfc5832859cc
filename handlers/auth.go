package handlers

import (
	"github.com/gin-gonic/gin"

	"mocksocial/middleware"
	"mocksocial/services"
	"mocksocial/utils"
)

type RegisterRequest struct {
	Username        string `json:"username" binding:"required,min=3,max=50"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	_, err := h.services.Auth.Register(services.RegisterData{
		Username:        req.Username,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Created(c, "Registration successful", nil)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	tokens, err := h.services.Auth.Login(req.Email, req.Password)
	if err != nil {
		utils.Error(c, err)
		return
	}

	h.setTokenCookie(c, middleware.RefreshTokenCookie, tokens.RefreshToken, h.tokens.RefreshTTL())
	h.setTokenCookie(c, middleware.AccessTokenCookie, tokens.AccessToken, h.tokens.AccessTTL())

	utils.Success(c, "Login successful", tokens)
}

// Logout only clears the cookies. Issued tokens stay valid until they expire.
func (h *Handler) Logout(c *gin.Context) {
	h.clearTokenCookie(c, middleware.RefreshTokenCookie)
	h.clearTokenCookie(c, middleware.AccessTokenCookie)

	utils.Success(c, "Logout successful", nil)
}

// RefreshToken takes the refresh token from the JSON body or the cookie.
func (h *Handler) RefreshToken(c *gin.Context) {
	var req RefreshTokenRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	h.refresh(c, req.RefreshToken)
}

// RefreshTokenFromHeader takes the refresh token from a Bearer
// Authorization header or the cookie.
func (h *Handler) RefreshTokenFromHeader(c *gin.Context) {
	h.refresh(c, middleware.BearerToken(c))
}

func (h *Handler) refresh(c *gin.Context, sent string) {
	accessToken, err := h.services.Auth.RefreshToken(sent, h.refreshCookie(c))
	if err != nil {
		utils.Error(c, err)
		return
	}

	h.setTokenCookie(c, middleware.AccessTokenCookie, accessToken, h.tokens.AccessTTL())

	utils.Success(c, "Successfully refreshed access token", gin.H{"accessToken": accessToken})
}

func (h *Handler) Me(c *gin.Context) {
	user, err := h.services.Auth.Me(middleware.GetUserID(c))
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, "Successfully get current user details", gin.H{"user": user})
}
