package grpc

import (
	"context"
	"strconv"

	"golang.org/x/time/rate"
	"liyu1981.xyz/vitals-console/pkg/auth"
	"liyu1981.xyz/vitals-console/pkg/models"
	"liyu1981.xyz/vitals-console/pkg/vitals"
)

type VitalsServer struct {
	Vitals           *vitals.Vitals
	RateLimiterStore *vitals.RateLimiterStore
	Tokens           *auth.TokenIssuer
}

var _ ThresholdServiceServer = (*VitalsServer)(nil)

func (s *VitalsServer) GetLimiter(key string) *rate.Limiter {
	if s.RateLimiterStore == nil {
		return nil
	} else {
		return s.RateLimiterStore.GetLimiter(key)
	}
}

func (s *VitalsServer) CheckOperatorLimiter(operator models.Operator) bool {
	return s.RateLimiterStore.Allow("user:" + strconv.FormatUint(uint64(operator.ID), 10))
}

type operatorCtxKey struct{}

func withOperator(ctx context.Context, operator models.Operator) context.Context {
	return context.WithValue(ctx, operatorCtxKey{}, operator)
}

// OperatorFrom returns the operator the auth interceptor attached to ctx.
func OperatorFrom(ctx context.Context) (models.Operator, bool) {
	operator, ok := ctx.Value(operatorCtxKey{}).(models.Operator)
	return operator, ok
}
