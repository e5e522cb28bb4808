// Package rpc exposes the scoring engine over gRPC. Messages are
// google.protobuf.Struct values so the service needs no generated code and
// carries exactly the JSON shapes of the HTTP API.
package rpc

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/humanparadigm/nice-engine/internal/engine"
	"github.com/humanparadigm/nice-engine/internal/wire"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// Ensure Service implements the gRPC interface.
var _ EngineServer = (*Service)(nil)

// Service implements EngineServer over an engine.Engine.
type Service struct {
	engine *engine.Engine
	logger *slog.Logger
	now    func() time.Time
}

// NewService creates the Engine service.
func NewService(eng *engine.Engine, logger *slog.Logger) *Service {
	return &Service{engine: eng, logger: logger, now: time.Now}
}

// NewServer returns a grpc.Server with the Engine and standard health
// services registered and the logging interceptor installed.
func NewServer(eng *engine.Engine, logger *slog.Logger) *grpc.Server {
	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(recoverInterceptor(logger), loggingInterceptor(logger)),
	)
	RegisterEngineServer(s, NewService(eng, logger))

	hs := health.NewServer()
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(s, hs)

	return s
}

// ScorePropagation scores a PropagationRequest.
func (s *Service) ScorePropagation(_ context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var body wire.PropagationRequest
	if err := decodeStruct(req, &body); err != nil {
		return nil, err
	}
	in, err := body.Input()
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	return encodeStruct(s.engine.Propagation(in))
}

// ScoreQuotient scores a QuotientRequest.
func (s *Service) ScoreQuotient(_ context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var body wire.QuotientRequest
	if err := decodeStruct(req, &body); err != nil {
		return nil, err
	}
	in, err := body.Input()
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	return encodeStruct(s.engine.Quotient(in))
}

// DecouplingTrend classifies a TrendRequest history.
func (s *Service) DecouplingTrend(_ context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var body wire.TrendRequest
	if err := decodeStruct(req, &body); err != nil {
		return nil, err
	}
	history, err := body.Inputs()
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	return encodeStruct(s.engine.Trend(history))
}

// QuotientReport renders the plain-text report for a QuotientRequest.
func (s *Service) QuotientReport(_ context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var body wire.QuotientRequest
	if err := decodeStruct(req, &body); err != nil {
		return nil, err
	}
	in, err := body.Input()
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	return encodeStruct(wire.QuotientReport{
		ReportID: uuid.NewString(),
		Report:   s.engine.QuotientReport(in, s.now()),
	})
}

// Dataset summarises the dataset the engine is matching against. The request
// is ignored.
func (s *Service) Dataset(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	ds := s.engine.Dataset()
	return encodeStruct(wire.DatasetSummary{
		Version:    ds.Version,
		Cases:      len(ds.Cases),
		Benchmarks: len(ds.Benchmarks),
	})
}

// ─── STRUCT CODEC ─────────────────────────────────────────────────────────────

// decodeStruct re-reads a Struct as JSON into dst with the same strictness
// as the HTTP API.
func decodeStruct(src *structpb.Struct, dst any) error {
	raw, err := src.MarshalJSON()
	if err != nil {
		return status.Errorf(codes.InvalidArgument, "invalid request: %v", err)
	}
	if err := wire.DecodeBytes(raw, dst); err != nil {
		return status.Errorf(codes.InvalidArgument, "invalid request: %v", err)
	}
	return nil
}

func encodeStruct(v any) (*structpb.Struct, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encode response: %v", err)
	}
	out := new(structpb.Struct)
	if err := out.UnmarshalJSON(raw); err != nil {
		return nil, status.Errorf(codes.Internal, "encode response: %v", err)
	}
	return out, nil
}

// toStruct is encodeStruct for client requests, where a failure is a plain
// error rather than a status.
func toStruct(v any) (*structpb.Struct, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}
	out := new(structpb.Struct)
	if err := out.UnmarshalJSON(raw); err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}
	return out, nil
}
