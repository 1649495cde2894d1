package payments

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"aerobook/internal/shared/config"

	"github.com/google/uuid"
)

// GatewayResult is the opaque outcome of a gateway call.
type GatewayResult struct {
	Reference string
	Message   string
}

// PaymentGateway is the external charging collaborator. A returned error
// means the charge or refund did not happen.
type PaymentGateway interface {
	Charge(ctx context.Context, transactionID string, amount float64, method Method) (*GatewayResult, error)
	Refund(ctx context.Context, transactionID string, amount float64) (*GatewayResult, error)
}

// MockGateway simulates a payment processor: it sleeps for the
// configured latency and fails a configurable fraction of charges.
// No real gateway integration exists; this is the stand-in.
type MockGateway struct {
	failureRate float64
	latency     time.Duration
	rng         *rand.Rand
}

func NewMockGateway(cfg config.GatewayConfig) *MockGateway {
	return &MockGateway{
		failureRate: cfg.FailureRate,
		latency:     cfg.Latency,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewMockGatewaySeeded fixes the random source so tests get
// deterministic outcomes.
func NewMockGatewaySeeded(failureRate float64, latency time.Duration, seed int64) *MockGateway {
	return &MockGateway{
		failureRate: failureRate,
		latency:     latency,
		rng:         rand.New(rand.NewSource(seed)),
	}
}

func (g *MockGateway) Charge(ctx context.Context, transactionID string, amount float64, method Method) (*GatewayResult, error) {
	if err := g.wait(ctx); err != nil {
		return nil, err
	}

	if g.rng.Float64() < g.failureRate {
		return nil, fmt.Errorf("gateway declined transaction %s", transactionID)
	}

	return &GatewayResult{
		Reference: gatewayReference(),
		Message:   fmt.Sprintf("charged %.2f via %s", amount, method),
	}, nil
}

func (g *MockGateway) Refund(ctx context.Context, transactionID string, amount float64) (*GatewayResult, error) {
	if err := g.wait(ctx); err != nil {
		return nil, err
	}

	if g.rng.Float64() < g.failureRate {
		return nil, fmt.Errorf("gateway rejected refund for transaction %s", transactionID)
	}

	return &GatewayResult{
		Reference: gatewayReference(),
		Message:   fmt.Sprintf("refunded %.2f", amount),
	}, nil
}

func (g *MockGateway) wait(ctx context.Context) error {
	if g.latency <= 0 {
		return nil
	}
	select {
	case <-time.After(g.latency):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func gatewayReference() string {
	return "GW-" + strings.ToUpper(uuid.New().String()[:8])
}
