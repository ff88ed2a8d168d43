package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

// The service speaks protobuf well-known types only, so its descriptor is kept by hand
// instead of being generated from a .proto file.

const ThresholdServiceName = "vitals.ThresholdService"

const (
	ThresholdService_GetActiveThresholds_FullMethodName = "/vitals.ThresholdService/GetActiveThresholds"
	ThresholdService_ClassifyRecord_FullMethodName      = "/vitals.ThresholdService/ClassifyRecord"
	ThresholdService_PreviewImpact_FullMethodName       = "/vitals.ThresholdService/PreviewImpact"
)

type ThresholdServiceServer interface {
	GetActiveThresholds(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	ClassifyRecord(context.Context, *structpb.Struct) (*structpb.Struct, error)
	PreviewImpact(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

func RegisterThresholdServiceServer(s grpc.ServiceRegistrar, srv ThresholdServiceServer) {
	s.RegisterService(&ThresholdService_ServiceDesc, srv)
}

var ThresholdService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ThresholdServiceName,
	HandlerType: (*ThresholdServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetActiveThresholds", Handler: _ThresholdService_GetActiveThresholds_Handler},
		{MethodName: "ClassifyRecord", Handler: _ThresholdService_ClassifyRecord_Handler},
		{MethodName: "PreviewImpact", Handler: _ThresholdService_PreviewImpact_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "vitals/threshold_service",
}

func _ThresholdService_GetActiveThresholds_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ThresholdServiceServer).GetActiveThresholds(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ThresholdService_GetActiveThresholds_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ThresholdServiceServer).GetActiveThresholds(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _ThresholdService_ClassifyRecord_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ThresholdServiceServer).ClassifyRecord(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ThresholdService_ClassifyRecord_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ThresholdServiceServer).ClassifyRecord(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func _ThresholdService_PreviewImpact_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ThresholdServiceServer).PreviewImpact(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ThresholdService_PreviewImpact_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ThresholdServiceServer).PreviewImpact(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

type ThresholdServiceClient interface {
	GetActiveThresholds(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error)
	ClassifyRecord(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	PreviewImpact(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type thresholdServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewThresholdServiceClient(cc grpc.ClientConnInterface) ThresholdServiceClient {
	return &thresholdServiceClient{cc}
}

func (c *thresholdServiceClient) GetActiveThresholds(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, ThresholdService_GetActiveThresholds_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *thresholdServiceClient) ClassifyRecord(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, ThresholdService_ClassifyRecord_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *thresholdServiceClient) PreviewImpact(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, ThresholdService_PreviewImpact_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
