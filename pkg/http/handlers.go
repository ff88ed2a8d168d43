package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"

	"liyu1981.xyz/vitals-console/pkg/common"
	"liyu1981.xyz/vitals-console/pkg/threshold"
	"liyu1981.xyz/vitals-console/pkg/vitals"
)

// utf8BOM lets spreadsheet tools detect the export encoding.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

type ThresholdRequest struct {
	SystolicMin  float64 `json:"systolic_min" zog:"systolic_min"`
	SystolicMax  float64 `json:"systolic_max" zog:"systolic_max"`
	DiastolicMin float64 `json:"diastolic_min" zog:"diastolic_min"`
	DiastolicMax float64 `json:"diastolic_max" zog:"diastolic_max"`
	HeartRateMin float64 `json:"heart_rate_min" zog:"heart_rate_min"`
	HeartRateMax float64 `json:"heart_rate_max" zog:"heart_rate_max"`
}

var thresholdRequestSchema = z.Struct(z.Shape{
	"SystolicMin":  z.Float64().Required(),
	"SystolicMax":  z.Float64().Required(),
	"DiastolicMin": z.Float64().Required(),
	"DiastolicMax": z.Float64().Required(),
	"HeartRateMin": z.Float64().Required(),
	"HeartRateMax": z.Float64().Required(),
})

// parseThreshold only checks shape; bounds are checked by threshold.Validate in the core.
func parseThreshold(c *gin.Context) (threshold.Config, bool) {
	var req ThresholdRequest
	if issues := thresholdRequestSchema.Parse(zhttp.Request(c.Request), &req); issues != nil {
		respondInvalidInput(c, issues)
		return threshold.Config{}, false
	}
	return threshold.Config(req), true
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Code: "invalid_input", Message: "invalid id"})
		return 0, false
	}
	return uint(id), true
}

func (rs *RestfulServer) GetActive(c *gin.Context) {
	active, err := rs.Vitals.Governance.FetchActive(c.Request.Context())
	if err != nil {
		common.GetCategoryLogger(common.LoggerNameRestfulServer, common.LoggerCategoryThreshold).
			Warn("Serving default thresholds", zap.String(common.LoggerFieldRequestID, c.GetString(ctxKeyRequestID)), zap.Error(err))
		active = vitals.DefaultActiveThresholds()
	}
	c.JSON(http.StatusOK, active)
}

func (rs *RestfulServer) GetDraft(c *gin.Context) {
	draft, err := rs.Vitals.Governance.FetchDraft(c.Request.Context(), operatorFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

func (rs *RestfulServer) PostDraft(c *gin.Context) {
	cfg, ok := parseThreshold(c)
	if !ok {
		return
	}

	draft, err := rs.Vitals.Governance.SaveDraft(c.Request.Context(), operatorFrom(c), cfg)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// PostValidate is the immediate-feedback check; it runs the same rule as SaveDraft but
// never fails the request on violations.
func (rs *RestfulServer) PostValidate(c *gin.Context) {
	cfg, ok := parseThreshold(c)
	if !ok {
		return
	}

	violations := rs.Vitals.Governance.Validate(cfg)
	c.JSON(http.StatusOK, gin.H{
		"valid":   len(violations) == 0,
		"details": violations.Messages(),
	})
}

func (rs *RestfulServer) PostPreview(c *gin.Context) {
	cfg, ok := parseThreshold(c)
	if !ok {
		return
	}

	summary, err := rs.Vitals.Governance.PreviewImpact(c.Request.Context(), operatorFrom(c), cfg)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (rs *RestfulServer) PostPublish(c *gin.Context) {
	draftID, ok := parseID(c)
	if !ok {
		return
	}

	active, err := rs.Vitals.Governance.Publish(c.Request.Context(), operatorFrom(c), draftID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, active)
}

func (rs *RestfulServer) PostReset(c *gin.Context) {
	draft, err := rs.Vitals.Governance.ResetToDefault(c.Request.Context(), operatorFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

type PageRequest struct {
	Page int `json:"page" zog:"page"`
	Size int `json:"size" zog:"size"`
}

var pageRequestSchema = z.Struct(z.Shape{
	"Page": z.Int().Default(1).GTE(1),
	"Size": z.Int().Default(20).GTE(1).LTE(100),
})

func (rs *RestfulServer) GetAuditLogs(c *gin.Context) {
	var req PageRequest
	if issues := pageRequestSchema.Parse(zhttp.Request(c.Request), &req); issues != nil {
		respondInvalidInput(c, issues)
		return
	}

	page, err := rs.Vitals.Governance.ListAuditLogs(c.Request.Context(), operatorFrom(c), req.Page, req.Size)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (rs *RestfulServer) ExportAuditLogs(c *gin.Context) {
	data, err := rs.Vitals.Governance.ExportAuditLogs(c.Request.Context(), operatorFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}

	filename := "threshold_audit_logs_" + time.Now().UTC().Format("20060102_150405") + ".csv"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", append(append([]byte{}, utf8BOM...), data...))
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (rs *RestfulServer) GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"version": rs.Version})
}
