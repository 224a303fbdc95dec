package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"nestodo/internal/adapter/http/dto"
	"nestodo/internal/adapter/http/middleware"
	"nestodo/internal/core/domain"
	"nestodo/internal/core/ports"
	"nestodo/pkg/apierrors"
)

const RefreshCookieName = "refreshToken"

// CookieConfig controls the refresh token cookie. The cookie is always
// HTTP-only so scripts never see the refresh token.
type CookieConfig struct {
	MaxAge   time.Duration
	Secure   bool
	SameSite http.SameSite
	Path     string
}

type AuthHandler struct {
	authService ports.AuthService
	cookie      CookieConfig
}

func NewAuthHandler(authService ports.AuthService, cookie CookieConfig) *AuthHandler {
	if cookie.Path == "" {
		cookie.Path = "/"
	}
	return &AuthHandler{authService: authService, cookie: cookie}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	tokens, err := h.authService.Register(c.Request.Context(), domain.RegisterInput{
		Email:    strings.TrimSpace(req.Email),
		Username: strings.TrimSpace(req.Username),
		Password: req.Password,
	})
	if err != nil {
		respondError(c, err, apierrors.MsgFailAuth, "failed to register user")
		return
	}

	h.setRefreshCookie(c, tokens.RefreshToken)
	c.JSON(http.StatusCreated, dto.TokenResponse{AccessToken: tokens.AccessToken})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	tokens, err := h.authService.Login(c.Request.Context(), domain.Credentials{
		Username: strings.TrimSpace(req.Username),
		Password: req.Password,
	})
	if err != nil {
		respondError(c, err, apierrors.MsgFailAuth, "failed to log in")
		return
	}

	h.setRefreshCookie(c, tokens.RefreshToken)
	c.JSON(http.StatusOK, dto.TokenResponse{AccessToken: tokens.AccessToken})
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken, err := c.Cookie(RefreshCookieName)
	if err != nil || refreshToken == "" {
		c.JSON(
			http.StatusUnauthorized,
			apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgMissingToken, middleware.GetLang(c)),
		)
		return
	}

	tokens, err := h.authService.RefreshTokens(c.Request.Context(), refreshToken)
	if err != nil {
		respondError(c, err, apierrors.MsgFailAuth, "failed to refresh tokens")
		return
	}

	h.setRefreshCookie(c, tokens.RefreshToken)
	c.JSON(http.StatusOK, dto.TokenResponse{AccessToken: tokens.AccessToken})
}

// Logout always clears the refresh cookie and answers 200. A failed
// revocation is logged; the token then stays usable until it expires.
func (h *AuthHandler) Logout(c *gin.Context) {
	refreshToken, _ := c.Cookie(RefreshCookieName)
	h.clearRefreshCookie(c)

	if err := h.authService.Logout(c.Request.Context(), refreshToken); err != nil {
		zap.L().Error("failed to revoke refresh token on logout", zap.Error(err))
	}

	c.JSON(http.StatusOK, dto.MessageResponse{
		Message: apierrors.GetTransErrorMsg(apierrors.MsgLoggedOut, middleware.GetLang(c)),
	})
}

func (h *AuthHandler) Profile(c *gin.Context) {
	rc, ok := middleware.GetRequestContext(c)
	if !ok {
		zap.L().Error("profile requested without request context")
		c.JSON(
			http.StatusUnauthorized,
			apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, middleware.GetLang(c)),
		)
		return
	}

	c.JSON(http.StatusOK, dto.ProfileResponse{UserID: rc.UserID, Email: rc.Email, Username: rc.Username})
}

func (h *AuthHandler) setRefreshCookie(c *gin.Context, token string) {
	c.SetSameSite(h.cookie.SameSite)
	c.SetCookie(RefreshCookieName, token, int(h.cookie.MaxAge.Seconds()), h.cookie.Path, "", h.cookie.Secure, true)
}

func (h *AuthHandler) clearRefreshCookie(c *gin.Context) {
	c.SetSameSite(h.cookie.SameSite)
	c.SetCookie(RefreshCookieName, "", -1, h.cookie.Path, "", h.cookie.Secure, true)
}
