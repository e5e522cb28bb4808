package rpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully-qualified gRPC service name.
const ServiceName = "nice.engine.v1.Engine"

// Method names, as they appear after the service in a full method path.
const (
	MethodScorePropagation = "ScorePropagation"
	MethodScoreQuotient    = "ScoreQuotient"
	MethodDecouplingTrend  = "DecouplingTrend"
	MethodQuotientReport   = "QuotientReport"
	MethodDataset          = "Dataset"
)

// EngineServer is the server API for the Engine service. Requests and
// responses are google.protobuf.Struct values carrying the same JSON shapes
// as the HTTP API.
type EngineServer interface {
	ScorePropagation(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ScoreQuotient(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DecouplingTrend(context.Context, *structpb.Struct) (*structpb.Struct, error)
	QuotientReport(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Dataset(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// ServiceDesc describes the Engine service to grpc.Server.RegisterService.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*EngineServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: MethodScorePropagation, Handler: unaryHandler(MethodScorePropagation, EngineServer.ScorePropagation)},
		{MethodName: MethodScoreQuotient, Handler: unaryHandler(MethodScoreQuotient, EngineServer.ScoreQuotient)},
		{MethodName: MethodDecouplingTrend, Handler: unaryHandler(MethodDecouplingTrend, EngineServer.DecouplingTrend)},
		{MethodName: MethodQuotientReport, Handler: unaryHandler(MethodQuotientReport, EngineServer.QuotientReport)},
		{MethodName: MethodDataset, Handler: unaryHandler(MethodDataset, EngineServer.Dataset)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "nice/engine/v1/engine.proto",
}

// RegisterEngineServer registers srv on s.
func RegisterEngineServer(s grpc.ServiceRegistrar, srv EngineServer) {
	s.RegisterService(&ServiceDesc, srv)
}

func fullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

type unaryMethod func(EngineServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(method string, call unaryMethod) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(EngineServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod(method),
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(EngineServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}
