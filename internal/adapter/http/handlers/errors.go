package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"nestodo/internal/adapter/http/middleware"
	"nestodo/internal/core/domain"
	"nestodo/pkg/apierrors"
)

type errorMessage struct {
	target error
	status int
	key    string
}

// domainErrors is matched in order: specific errors first, then the kinds.
var domainErrors = []errorMessage{
	{domain.ErrWorkspaceNotFound, http.StatusNotFound, apierrors.MsgWorkspaceNotFound},
	{domain.ErrBoardNotFound, http.StatusNotFound, apierrors.MsgBoardNotFound},
	{domain.ErrTaskListNotFound, http.StatusNotFound, apierrors.MsgTaskListNotFound},
	{domain.ErrTaskNotFound, http.StatusNotFound, apierrors.MsgTaskNotFound},
	{domain.ErrSubtaskNotFound, http.StatusNotFound, apierrors.MsgSubtaskNotFound},
	{domain.ErrAttachmentNotFound, http.StatusNotFound, apierrors.MsgAttachmentNotFound},
	{domain.ErrTagNotFound, http.StatusNotFound, apierrors.MsgTagNotFound},
	{domain.ErrTaskListSetMismatch, http.StatusBadRequest, apierrors.MsgTaskListSetMismatch},
	{domain.ErrCrossBoardMove, http.StatusBadRequest, apierrors.MsgCrossBoardMove},
	{domain.ErrPositionOutOfRange, http.StatusBadRequest, apierrors.MsgPositionOutOfRange},
	{domain.ErrEmptyTitle, http.StatusBadRequest, apierrors.MsgEmptyTitle},
	{domain.ErrNegativeDuration, http.StatusBadRequest, apierrors.MsgNegativeDuration},
	{domain.ErrInvalidPriority, http.StatusBadRequest, apierrors.MsgInvalidPriority},
	{domain.ErrEmptyFileName, http.StatusBadRequest, apierrors.MsgEmptyFileName},
	{domain.ErrEmailTaken, http.StatusConflict, apierrors.MsgEmailTaken},
	{domain.ErrUsernameTaken, http.StatusConflict, apierrors.MsgUsernameTaken},
	{domain.ErrInvalidCredentials, http.StatusUnauthorized, apierrors.MsgInvalidCredentials},
	{domain.ErrTokenRevoked, http.StatusUnauthorized, apierrors.MsgTokenRevoked},
	{domain.ErrInvalidToken, http.StatusUnauthorized, apierrors.MsgInvalidToken},
	{domain.ErrNotFound, http.StatusNotFound, apierrors.MsgNotFound},
	{domain.ErrInvalidArgument, http.StatusBadRequest, apierrors.MsgInvalidArgument},
	{domain.ErrConflict, http.StatusConflict, apierrors.MsgConflict},
	{domain.ErrUnauthorized, http.StatusUnauthorized, apierrors.MsgUnauthorized},
}

// respondError writes the translated error for a domain error. Anything else
// is logged with fields and answered with a 500 carrying fallbackKey.
func respondError(c *gin.Context, err error, fallbackKey, logMessage string, fields ...zap.Field) {
	lang := middleware.GetLang(c)

	for _, m := range domainErrors {
		if errors.Is(err, m.target) {
			c.JSON(m.status, apierrors.CreateError(m.status, m.key, lang))
			return
		}
	}

	zap.L().Error(logMessage, append(fields, zap.Error(err))...)
	c.JSON(
		http.StatusInternalServerError,
		apierrors.CreateError(http.StatusInternalServerError, fallbackKey, lang),
	)
}

func respondInvalidPayload(c *gin.Context) {
	c.JSON(
		http.StatusBadRequest,
		apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, middleware.GetLang(c)),
	)
}

// pathID parses a positive id path parameter, answering 400 when it is not
// one.
func pathID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidID, middleware.GetLang(c)),
		)
		return 0, false
	}
	return id, true
}

// currentUser returns the authenticated caller. Routes are wired behind
// RequireAuth, so a missing context is answered as unauthorized.
func currentUser(c *gin.Context) (uint64, bool) {
	rc, ok := middleware.GetRequestContext(c)
	if !ok || rc.UserID == 0 {
		c.JSON(
			http.StatusUnauthorized,
			apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, middleware.GetLang(c)),
		)
		return 0, false
	}
	return rc.UserID, true
}
