package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"

	"liyu1981.xyz/vitals-console/pkg/models"
)

func recordLimiterKey(userID uint) string {
	return "user:" + strconv.FormatUint(uint64(userID), 10)
}

type RecordRequest struct {
	Timestamp time.Time `json:"timestamp" zog:"timestamp"`
	Systolic  float64   `json:"systolic" zog:"systolic"`
	Diastolic float64   `json:"diastolic" zog:"diastolic"`
	HeartRate *float64  `json:"heart_rate,omitempty" zog:"heart_rate"`
}

var recordRequestSchema = z.Struct(z.Shape{
	// missing timestamp means now
	"Timestamp": z.Time(),
	"Systolic":  z.Float64().Required(),
	"Diastolic": z.Float64().Required(),
	"HeartRate": z.Ptr(z.Float64()),
})

// parseJSONBody decodes the body into a plain map before running the schema so optional
// pointer fields are filled the same way as on the gRPC side.
func parseJSONBody(c *gin.Context, schema *z.StructSchema, dest any) bool {
	var data map[string]any
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Code: "invalid_input", Message: "invalid request body", Details: []string{err.Error()}})
		return false
	}
	if issues := schema.Parse(data, dest); issues != nil {
		respondInvalidInput(c, issues)
		return false
	}
	return true
}

func (rs *RestfulServer) PostRecord(c *gin.Context) {
	operator := operatorFrom(c)

	if !rs.CheckLimiter(recordLimiterKey(operator.ID)) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req RecordRequest
	if !parseJSONBody(c, recordRequestSchema, &req) {
		return
	}

	record, err := rs.Vitals.Record.AddRecord(c.Request.Context(), operator.ID, &models.HealthRecord{
		Timestamp: req.Timestamp,
		Systolic:  req.Systolic,
		Diastolic: req.Diastolic,
		HeartRate: req.HeartRate,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

type RecordListRequest struct {
	Limit int `json:"limit" zog:"limit"`
}

var recordListRequestSchema = z.Struct(z.Shape{
	"Limit": z.Int().Default(50).GTE(1).LTE(500),
})

func (rs *RestfulServer) GetRecords(c *gin.Context) {
	var req RecordListRequest
	if issues := recordListRequestSchema.Parse(zhttp.Request(c.Request), &req); issues != nil {
		respondInvalidInput(c, issues)
		return
	}

	records, err := rs.Vitals.Record.ListRecords(c.Request.Context(), operatorFrom(c).ID, req.Limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"records": records})
}

type ClassifyRequest struct {
	Systolic  float64  `json:"systolic" zog:"systolic"`
	Diastolic float64  `json:"diastolic" zog:"diastolic"`
	HeartRate *float64 `json:"heart_rate,omitempty" zog:"heart_rate"`
}

var classifyRequestSchema = z.Struct(z.Shape{
	"Systolic":  z.Float64().Required(),
	"Diastolic": z.Float64().Required(),
	"HeartRate": z.Ptr(z.Float64()),
})

func (rs *RestfulServer) PostClassify(c *gin.Context) {
	var req ClassifyRequest
	if !parseJSONBody(c, classifyRequestSchema, &req) {
		return
	}

	classification, err := rs.Vitals.Record.ClassifyReading(c.Request.Context(), req.Systolic, req.Diastolic, req.HeartRate)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"classification": classification})
}
