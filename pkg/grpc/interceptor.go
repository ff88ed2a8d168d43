package grpc

import (
	"context"
	"reflect"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
	"liyu1981.xyz/vitals-console/pkg/auth"
	"liyu1981.xyz/vitals-console/pkg/common"
	"liyu1981.xyz/vitals-console/pkg/models"
)

// CreateAuthInterceptor resolves the bearer token in the "authorization" metadata to the
// stored user and attaches it to the handler context.
func (s *VitalsServer) CreateAuthInterceptor() grpc.UnaryServerInterceptor {
	logger := common.GetCategoryLogger(common.LoggerNameGrpcServer, common.LoggerCategoryAuth)

	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		md, _ := metadata.FromIncomingContext(ctx)
		values := md.Get("authorization")
		if len(values) == 0 {
			return nil, status.Error(codes.Unauthenticated, "missing bearer token")
		}

		token, ok := auth.BearerToken(values[0])
		if !ok {
			return nil, status.Error(codes.Unauthenticated, "missing bearer token")
		}

		claims, err := s.Tokens.Parse(token)
		if err != nil {
			logger.Info("Rejected token", zap.String("method", info.FullMethod), zap.Error(err))
			return nil, status.Error(codes.Unauthenticated, auth.ErrInvalidToken.Error())
		}

		user, err := s.Vitals.Admin.GetUser(ctx, claims.UserID)
		if err != nil {
			logger.Info("Token user not found", zap.Uint("user_id", claims.UserID), zap.Error(err))
			return nil, status.Error(codes.Unauthenticated, auth.ErrInvalidToken.Error())
		}

		operator := models.Operator{ID: user.ID, Username: user.Username, Role: user.Role}
		return handler(withOperator(ctx, operator), req)
	}
}

// CreateRateLimitInterceptor limits the listed request types per operator. It must run
// after the auth interceptor.
func (s *VitalsServer) CreateRateLimitInterceptor(targetReqTypes []proto.Message) grpc.UnaryServerInterceptor {
	targetTypeMap := common.Reducer(targetReqTypes,
		func(m map[reflect.Type]bool, t proto.Message) map[reflect.Type]bool {
			m[reflect.TypeOf(t)] = true
			return m
		},
		map[reflect.Type]bool{},
	)

	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		if _, ok := targetTypeMap[reflect.TypeOf(req)]; ok {
			if operator, ok := OperatorFrom(ctx); ok {
				if !s.CheckOperatorLimiter(operator) {
					return nil, status.Errorf(codes.ResourceExhausted, "rate limit exceeded")
				}
			}
		}

		return handler(ctx, req)
	}
}
