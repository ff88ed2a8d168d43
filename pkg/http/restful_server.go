package http

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"liyu1981.xyz/vitals-console/pkg/auth"
	"liyu1981.xyz/vitals-console/pkg/metrics"
	"liyu1981.xyz/vitals-console/pkg/models"
	"liyu1981.xyz/vitals-console/pkg/vitals"
)

type RestfulServer struct {
	Server           *gin.Engine
	Vitals           *vitals.Vitals
	RateLimiterStore *vitals.RateLimiterStore
	Tokens           *auth.TokenIssuer
	Metrics          *metrics.Collector
	Version          string
}

func (rs *RestfulServer) GetLimiter(key string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(key)
	}
}

func (rs *RestfulServer) CheckLimiter(key string) bool {
	return rs.RateLimiterStore.Allow(key)
}

func (rs *RestfulServer) SetLimiter(key string, keyRate float64, keyBurst int) {
	if rs.RateLimiterStore == nil {
		return
	}
	rs.RateLimiterStore.SetLimiter(key, rate.Limit(keyRate), keyBurst)
}

func (rs *RestfulServer) Setup() {
	rs.Server.Use(RequestID())
	if rs.Metrics != nil {
		rs.Server.Use(rs.Metrics.GinMiddleware())
		rs.Server.GET("/metrics", gin.WrapH(rs.Metrics.Handler()))
	}

	rs.Server.GET("/healthz", rs.HealthCheck)
	rs.Server.GET("/version", rs.GetVersion)

	api := rs.Server.Group("/api/v1")
	api.POST("/auth/login", rs.Login)

	secured := api.Group("", rs.Authenticate())
	secured.POST("/auth/change-password", rs.ChangePassword)

	thresholds := secured.Group("/thresholds", RequiredRole(models.RoleSuperAdmin))
	{
		thresholds.GET("/active", rs.GetActive)
		thresholds.GET("/draft", rs.GetDraft)
		thresholds.POST("/draft", rs.PostDraft)
		thresholds.POST("/validate", rs.PostValidate)
		thresholds.POST("/preview", rs.PostPreview)
		thresholds.POST("/:id/publish", rs.PostPublish)
		thresholds.POST("/reset", rs.PostReset)
		thresholds.GET("/audit-logs", rs.GetAuditLogs)
		thresholds.GET("/audit-logs/export", rs.ExportAuditLogs)
	}

	records := secured.Group("/records")
	{
		records.POST("", rs.PostRecord)
		records.GET("", rs.GetRecords)
		records.POST("/classify", rs.PostClassify)
	}

	users := secured.Group("/admin/users", RequiredRole(models.RoleAdmin))
	{
		users.GET("", rs.GetUsers)
		users.POST("", rs.PostUser)
		users.POST("/:id/reset-password", rs.PostResetPassword)
	}

	superUsers := secured.Group("/admin/users", RequiredRole(models.RoleSuperAdmin))
	{
		superUsers.POST("/:id/promote-admin", rs.PostPromoteAdmin)
		superUsers.POST("/:id/demote-admin", rs.PostDemoteAdmin)
		superUsers.POST("/:id/limiter", rs.PostLimiter)
	}
}
