package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"

	"liyu1981.xyz/vitals-console/pkg/vitals"
)

type LoginRequest struct {
	Username string `json:"username" zog:"username"`
	Password string `json:"password" zog:"password"`
}

var loginRequestSchema = z.Struct(z.Shape{
	"Username": z.String().Trim().Min(1).Required(),
	"Password": z.String().Min(1).Required(),
})

func (rs *RestfulServer) Login(c *gin.Context) {
	var req LoginRequest
	if issues := loginRequestSchema.Parse(zhttp.Request(c.Request), &req); issues != nil {
		respondInvalidInput(c, issues)
		return
	}

	if !rs.CheckLimiter("login:" + req.Username) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	user, err := rs.Vitals.Admin.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := rs.Tokens.Issue(user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token":         token,
		"token_type":           "Bearer",
		"expires_in":           int64(rs.Tokens.TTL.Seconds()),
		"user":                 user,
		"must_change_password": user.MustChangePassword,
	})
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" zog:"old_password"`
	NewPassword string `json:"new_password" zog:"new_password"`
}

var changePasswordRequestSchema = z.Struct(z.Shape{
	"OldPassword": z.String().Min(1).Required(),
	"NewPassword": z.String().Min(1).Required(),
})

func (rs *RestfulServer) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if issues := changePasswordRequestSchema.Parse(zhttp.Request(c.Request), &req); issues != nil {
		respondInvalidInput(c, issues)
		return
	}

	if err := rs.Vitals.Admin.ChangePassword(c.Request.Context(), operatorFrom(c).ID, req.OldPassword, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (rs *RestfulServer) GetUsers(c *gin.Context) {
	users, err := rs.Vitals.Admin.ListUsers(c.Request.Context(), operatorFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

type UserRequest struct {
	Username string `json:"username" zog:"username"`
	Email    string `json:"email" zog:"email"`
	Password string `json:"password" zog:"password"`
}

var userRequestSchema = z.Struct(z.Shape{
	"Username": z.String().Trim().Min(3).Max(64).Required(),
	"Email":    z.String().Trim().Email(),
	"Password": z.String().Min(1).Required(),
})

func (rs *RestfulServer) PostUser(c *gin.Context) {
	var req UserRequest
	if issues := userRequestSchema.Parse(zhttp.Request(c.Request), &req); issues != nil {
		respondInvalidInput(c, issues)
		return
	}

	user, err := rs.Vitals.Admin.RegisterUser(c.Request.Context(), operatorFrom(c), req.Username, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (rs *RestfulServer) PostPromoteAdmin(c *gin.Context) {
	userID, ok := parseID(c)
	if !ok {
		return
	}

	user, err := rs.Vitals.Admin.PromoteAdmin(c.Request.Context(), operatorFrom(c), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (rs *RestfulServer) PostDemoteAdmin(c *gin.Context) {
	userID, ok := parseID(c)
	if !ok {
		return
	}

	user, err := rs.Vitals.Admin.DemoteAdmin(c.Request.Context(), operatorFrom(c), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (rs *RestfulServer) PostResetPassword(c *gin.Context) {
	userID, ok := parseID(c)
	if !ok {
		return
	}

	temp, err := rs.Vitals.Admin.ResetPassword(c.Request.Context(), operatorFrom(c), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"temporary_password": temp})
}

type LimiterRequest struct {
	Rate  float64 `json:"rate" zog:"rate"`
	Burst int     `json:"burst" zog:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"Rate":  z.Float64().GT(0).Required(),
	"Burst": z.Int().GTE(1).Required(),
})

// PostLimiter overrides the record ingestion rate of one user.
func (rs *RestfulServer) PostLimiter(c *gin.Context) {
	if !operatorFrom(c).IsSuperAdmin() {
		respondError(c, vitals.ErrForbidden)
		return
	}

	userID, ok := parseID(c)
	if !ok {
		return
	}

	var req LimiterRequest
	if issues := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); issues != nil {
		respondInvalidInput(c, issues)
		return
	}

	rs.SetLimiter(recordLimiterKey(userID), req.Rate, req.Burst)

	c.Status(http.StatusOK)
}
