package grpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	z "github.com/Oudwins/zog"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"liyu1981.xyz/vitals-console/pkg/common"
	"liyu1981.xyz/vitals-console/pkg/threshold"
	"liyu1981.xyz/vitals-console/pkg/vitals"
)

type classifyInput struct {
	Systolic  float64  `zog:"systolic"`
	Diastolic float64  `zog:"diastolic"`
	HeartRate *float64 `zog:"heart_rate"`
}

var classifyInputSchema = z.Struct(z.Shape{
	"Systolic":  z.Float64().Required(),
	"Diastolic": z.Float64().Required(),
	"HeartRate": z.Ptr(z.Float64()),
})

type configInput struct {
	SystolicMin  float64 `zog:"systolic_min"`
	SystolicMax  float64 `zog:"systolic_max"`
	DiastolicMin float64 `zog:"diastolic_min"`
	DiastolicMax float64 `zog:"diastolic_max"`
	HeartRateMin float64 `zog:"heart_rate_min"`
	HeartRateMax float64 `zog:"heart_rate_max"`
}

var configInputSchema = z.Struct(z.Shape{
	"SystolicMin":  z.Float64().Required(),
	"SystolicMax":  z.Float64().Required(),
	"DiastolicMin": z.Float64().Required(),
	"DiastolicMax": z.Float64().Required(),
	"HeartRateMin": z.Float64().Required(),
	"HeartRateMax": z.Float64().Required(),
})

func invalidArgument(issues z.ZogIssueMap) error {
	return status.Errorf(codes.InvalidArgument, "validation error: %v", z.Issues.SanitizeMap(issues))
}

// toStruct goes through the JSON form so responses share field names with the HTTP API.
func toStruct(v any) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return structpb.NewStruct(m)
}

func toStatus(err error) error {
	var verr *vitals.ValidationError

	switch {
	case errors.As(err, &verr):
		return status.Error(codes.InvalidArgument, fmt.Sprintf("%s: %s", vitals.ErrValidationFailed, strings.Join(verr.Details(), "; ")))
	case errors.Is(err, vitals.ErrForbidden):
		return status.Error(codes.PermissionDenied, "Forbidden: SUPER_ADMIN role required")
	case errors.Is(err, vitals.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, vitals.ErrServiceUnavailable):
		return status.Error(codes.Unavailable, vitals.ErrServiceUnavailable.Error())
	default:
		common.GetLoggerWith(common.LoggerNameGrpcServer).Error("Unhandled error", zap.Error(err))
		return status.Error(codes.Internal, "internal error")
	}
}

func (s *VitalsServer) GetActiveThresholds(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	active, err := s.Vitals.Governance.FetchActive(ctx)
	if err != nil {
		common.GetCategoryLogger(common.LoggerNameGrpcServer, common.LoggerCategoryThreshold).
			Warn("Serving default thresholds", zap.Error(err))
		active = vitals.DefaultActiveThresholds()
	}
	return toStruct(active)
}

func (s *VitalsServer) ClassifyRecord(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in classifyInput
	if issues := classifyInputSchema.Parse(req.AsMap(), &in); issues != nil {
		return nil, invalidArgument(issues)
	}

	classification, err := s.Vitals.Record.ClassifyReading(ctx, in.Systolic, in.Diastolic, in.HeartRate)
	if err != nil {
		return nil, toStatus(err)
	}
	return structpb.NewStruct(map[string]any{"classification": string(classification)})
}

func (s *VitalsServer) PreviewImpact(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	operator, ok := OperatorFrom(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing operator")
	}

	var in configInput
	if issues := configInputSchema.Parse(req.AsMap(), &in); issues != nil {
		return nil, invalidArgument(issues)
	}

	summary, err := s.Vitals.Governance.PreviewImpact(ctx, operator, threshold.Config(in))
	if err != nil {
		return nil, toStatus(err)
	}
	return toStruct(summary)
}
