package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"nestodo/internal/core/domain"
	"nestodo/internal/core/ports"
	"nestodo/pkg/apierrors"
)

const requestContextKey = "request_context"

// RequireAuth verifies the bearer access token and stores the caller as a
// domain.RequestContext on the gin context.
func RequireAuth(auth ports.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := GetLang(c)

		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgMissingToken, lang),
			)
			return
		}

		payload, err := auth.VerifyAccess(c.Request.Context(), token)
		if err != nil {
			if !errors.Is(err, domain.ErrUnauthorized) {
				zap.L().Error("failed to verify access token", zap.Error(err))
			}
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgInvalidToken, lang),
			)
			return
		}

		c.Set(requestContextKey, domain.RequestContext{
			UserID:   payload.UserID,
			Email:    payload.Email,
			Username: payload.Username,
		})
		c.Next()
	}
}

// GetRequestContext returns the caller set by RequireAuth.
func GetRequestContext(c *gin.Context) (domain.RequestContext, bool) {
	value, exists := c.Get(requestContextKey)
	if !exists {
		return domain.RequestContext{}, false
	}
	rc, ok := value.(domain.RequestContext)
	return rc, ok
}

func SetRequestContext(c *gin.Context, rc domain.RequestContext) {
	c.Set(requestContextKey, rc)
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
