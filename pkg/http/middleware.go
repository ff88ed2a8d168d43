package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"liyu1981.xyz/vitals-console/pkg/auth"
	"liyu1981.xyz/vitals-console/pkg/common"
	"liyu1981.xyz/vitals-console/pkg/models"
)

const (
	ctxKeyOperator     = "operator"
	ctxKeyRequestID    = "request_id"
	ctxKeyRequiredRole = "required_role"

	headerRequestID = "X-Request-ID"
)

// RequestID reuses an inbound X-Request-ID or mints one, and echoes it back.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(headerRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ctxKeyRequestID, id)
		c.Header(headerRequestID, id)
		c.Next()
	}
}

// RequiredRole only labels the route group; the role checks themselves live in the core
// so every transport enforces the same rules.
func RequiredRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ctxKeyRequiredRole, role)
		c.Next()
	}
}

// Authenticate resolves the bearer token to the stored user. The user row is reloaded on
// every request so role changes apply without waiting for token expiry.
func (rs *RestfulServer) Authenticate() gin.HandlerFunc {
	logger := common.GetCategoryLogger(common.LoggerNameRestfulServer, common.LoggerCategoryAuth)

	return func(c *gin.Context) {
		token, ok := auth.BearerToken(c.GetHeader("Authorization"))
		if !ok {
			abortUnauthorized(c, "missing bearer token")
			return
		}

		claims, err := rs.Tokens.Parse(token)
		if err != nil {
			logger.Info("Rejected token", zap.String(common.LoggerFieldRequestID, c.GetString(ctxKeyRequestID)), zap.Error(err))
			abortUnauthorized(c, auth.ErrInvalidToken.Error())
			return
		}

		user, err := rs.Vitals.Admin.GetUser(c.Request.Context(), claims.UserID)
		if err != nil {
			logger.Info("Token user not found", zap.Uint("user_id", claims.UserID), zap.Error(err))
			abortUnauthorized(c, auth.ErrInvalidToken.Error())
			return
		}

		c.Set(ctxKeyOperator, models.Operator{ID: user.ID, Username: user.Username, Role: user.Role})
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Code: "unauthorized", Message: message})
}

func operatorFrom(c *gin.Context) models.Operator {
	if v, ok := c.Get(ctxKeyOperator); ok {
		return v.(models.Operator)
	}
	return models.Operator{}
}
