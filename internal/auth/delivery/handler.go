package delivery

import (
	"log"
	"net/http"

	authdomain "vidtube-backend/internal/auth/domain"
	authdto "vidtube-backend/internal/auth/dto"
	"vidtube-backend/internal/auth/usecase"
	"vidtube-backend/pkg/apierror"
	"vidtube-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

// AuthHandler exposes the authentication endpoints
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	config      *config.Config
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		config:      cfg,
	}
}

func respondError(c *gin.Context, err error) {
	status, message := apierror.StatusOf(err)
	if status == http.StatusInternalServerError {
		log.Printf("internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.JSON(status, gin.H{"error": message})
}

func (h *AuthHandler) setAuthCookies(c *gin.Context, tokens *authdto.TokenResponse) {
	c.SetCookie(AccessTokenCookie, tokens.AccessToken, int(h.config.AccessTokenExpiry.Seconds()), "/", "", true, true)
	c.SetCookie(RefreshTokenCookie, tokens.RefreshToken, int(h.config.RefreshTokenExpiry.Seconds()), "/", "", true, true)
}

func (h *AuthHandler) clearAuthCookies(c *gin.Context) {
	c.SetCookie(AccessTokenCookie, "", -1, "/", "", true, true)
	c.SetCookie(RefreshTokenCookie, "", -1, "/", "", true, true)
}

// Register handles multipart registration: form fields plus a required
// avatar file and an optional cover image.
func (h *AuthHandler) Register(c *gin.Context) {
	var req authdto.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	avatar, err := c.FormFile("avatar")
	if err != nil {
		avatar = nil
	}
	cover, err := c.FormFile("coverImage")
	if err != nil {
		cover = nil
	}

	user, err := h.authUsecase.Register(c.Request.Context(), &req, avatar, cover)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tokens, err := h.authUsecase.Login(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setAuthCookies(c, tokens)
	c.JSON(http.StatusOK, tokens)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	userID := c.GetString("userID")
	if err := h.authUsecase.Logout(userID); err != nil {
		respondError(c, err)
		return
	}

	h.clearAuthCookies(c)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// RefreshToken accepts the refresh token from the refreshToken cookie or the
// request body and rotates it into a new pair.
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	token, _ := c.Cookie(RefreshTokenCookie)
	if token == "" {
		var req authdto.RefreshTokenRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			token = req.RefreshToken
		}
	}
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized request"})
		return
	}

	tokens, err := h.authUsecase.RefreshTokens(token)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setAuthCookies(c, tokens)
	c.JSON(http.StatusOK, tokens)
}

func (h *AuthHandler) Me(c *gin.Context) {
	user := c.MustGet("user").(*authdomain.User)
	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req authdto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetString("userID")
	if err := h.authUsecase.ChangePassword(userID, &req); err != nil {
		respondError(c, err)
		return
	}

	// The refresh token is invalidated with the old password, so the
	// session cookies are stale from here on.
	h.clearAuthCookies(c)
	c.JSON(http.StatusOK, gin.H{"message": "password changed"})
}
