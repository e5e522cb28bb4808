package rpc

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/humanparadigm/nice-engine/internal/engine"
	"github.com/humanparadigm/nice-engine/internal/scoring"
	"github.com/humanparadigm/nice-engine/internal/wire"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/structpb"
)

// Client is a typed client for the Engine service.
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient wraps an established connection.
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// Dial opens a plaintext connection to addr. The service is meant to sit
// behind a TLS-terminating proxy or on a private network.
func Dial(addr string, opts ...grpc.DialOption) (*grpc.ClientConn, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.NewClient(addr, opts...)
	if err != nil {
		return nil, fmt.Errorf("rpc: dial %s: %w", addr, err)
	}
	return conn, nil
}

// ScorePropagation scores in remotely.
func (c *Client) ScorePropagation(ctx context.Context, in scoring.PropagationInput) (engine.PropagationAssessment, error) {
	var out engine.PropagationAssessment
	err := c.call(ctx, MethodScorePropagation, wire.NewPropagationRequest(in), &out)
	return out, err
}

// ScoreQuotient scores in remotely.
func (c *Client) ScoreQuotient(ctx context.Context, in scoring.IQInput) (engine.QuotientAssessment, error) {
	var out engine.QuotientAssessment
	err := c.call(ctx, MethodScoreQuotient, wire.NewQuotientRequest(in), &out)
	return out, err
}

// DecouplingTrend classifies history remotely.
func (c *Client) DecouplingTrend(ctx context.Context, history []scoring.PropagationInput) (engine.TrendAssessment, error) {
	req := wire.TrendRequest{History: make([]wire.PropagationRequest, len(history))}
	for i, in := range history {
		req.History[i] = wire.NewPropagationRequest(in)
	}
	var out engine.TrendAssessment
	err := c.call(ctx, MethodDecouplingTrend, req, &out)
	return out, err
}

// QuotientReport renders the report remotely.
func (c *Client) QuotientReport(ctx context.Context, in scoring.IQInput) (wire.QuotientReport, error) {
	var out wire.QuotientReport
	err := c.call(ctx, MethodQuotientReport, wire.NewQuotientRequest(in), &out)
	return out, err
}

// Dataset returns the summary of the server's dataset.
func (c *Client) Dataset(ctx context.Context) (wire.DatasetSummary, error) {
	var out wire.DatasetSummary
	err := c.call(ctx, MethodDataset, struct{}{}, &out)
	return out, err
}

func (c *Client) call(ctx context.Context, method string, req, dst any) error {
	in, err := toStruct(req)
	if err != nil {
		return err
	}
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, fullMethod(method), in, out); err != nil {
		return err
	}
	raw, err := out.MarshalJSON()
	if err != nil {
		return fmt.Errorf("rpc: %s: decode response: %w", method, err)
	}
	// Responses are decoded leniently so a newer server may add fields.
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("rpc: %s: decode response: %w", method, err)
	}
	return nil
}
