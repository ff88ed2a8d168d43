package http

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	z "github.com/Oudwins/zog"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"liyu1981.xyz/vitals-console/pkg/common"
	"liyu1981.xyz/vitals-console/pkg/models"
	"liyu1981.xyz/vitals-console/pkg/vitals"
)

type ErrorResponse struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

func forbiddenMessage(c *gin.Context) string {
	if role, ok := c.Get(ctxKeyRequiredRole); ok {
		return fmt.Sprintf("Forbidden: %s role required", role.(models.Role))
	}
	return "Forbidden"
}

// respondError maps core error kinds onto status codes. Anything unrecognised is logged
// and reported as a bare 500.
func respondError(c *gin.Context, err error) {
	var verr *vitals.ValidationError

	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, ErrorResponse{Code: "validation_failed", Message: vitals.ErrValidationFailed.Error(), Details: verr.Details()})
	case errors.Is(err, vitals.ErrNoDraft):
		c.JSON(http.StatusBadRequest, ErrorResponse{Code: "no_draft", Message: vitals.ErrNoDraft.Error()})
	case errors.Is(err, vitals.ErrInvalidOperation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Code: "invalid_operation", Message: err.Error()})
	case errors.Is(err, vitals.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Code: "invalid_credentials", Message: vitals.ErrInvalidCredentials.Error()})
	case errors.Is(err, vitals.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Code: "forbidden", Message: forbiddenMessage(c)})
	case errors.Is(err, vitals.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Code: "not_found", Message: err.Error()})
	case errors.Is(err, vitals.ErrServiceUnavailable):
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Code: "service_unavailable", Message: vitals.ErrServiceUnavailable.Error()})
	default:
		common.GetLoggerWith(common.LoggerNameRestfulServer).Error("Unhandled error",
			zap.String(common.LoggerFieldRequestID, c.GetString(ctxKeyRequestID)),
			zap.String("route", c.FullPath()),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Code: "internal", Message: "internal server error"})
	}
}

// respondInvalidInput reports schema failures as a validation error with one detail per
// offending field.
func respondInvalidInput(c *gin.Context, issues z.ZogIssueMap) {
	details := []string{}
	for field, messages := range z.Issues.SanitizeMap(issues) {
		if strings.HasPrefix(field, "$") {
			continue
		}
		for _, m := range messages {
			details = append(details, field+": "+m)
		}
	}
	sort.Strings(details)

	c.JSON(http.StatusBadRequest, ErrorResponse{Code: "invalid_input", Message: "invalid request body", Details: details})
}
