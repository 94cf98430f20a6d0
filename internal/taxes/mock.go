package taxes

import (
	"context"

	"github.com/ravenmoor/taxbridge/internal/domain"
)

// MockProvider implements Provider for testing. Each method delegates to
// the corresponding func field when set and records that it was called.
type MockProvider struct {
	CalculateTaxesFunc func(ctx context.Context, payload *domain.CalculateTaxesPayload) (*domain.CalculateTaxesResponse, error)
	ConfirmOrderFunc   func(ctx context.Context, payload *domain.OrderConfirmedPayload) (*domain.ConfirmOrderResult, error)
	RefundOrderFunc    func(ctx context.Context, payload *domain.OrderRefundedPayload) error
	CancelOrderFunc    func(ctx context.Context, payload *domain.OrderCancelledPayload) error
	PingFunc           func(ctx context.Context) error

	CalculateTaxesCalled bool
	ConfirmOrderCalled   bool
	RefundOrderCalled    bool
	CancelOrderCalled    bool
}

func (m *MockProvider) CalculateTaxes(ctx context.Context, payload *domain.CalculateTaxesPayload) (*domain.CalculateTaxesResponse, error) {
	m.CalculateTaxesCalled = true
	if m.CalculateTaxesFunc != nil {
		return m.CalculateTaxesFunc(ctx, payload)
	}
	return &domain.CalculateTaxesResponse{Lines: []domain.CalculateTaxesLine{}}, nil
}

func (m *MockProvider) ConfirmOrder(ctx context.Context, payload *domain.OrderConfirmedPayload) (*domain.ConfirmOrderResult, error) {
	m.ConfirmOrderCalled = true
	if m.ConfirmOrderFunc != nil {
		return m.ConfirmOrderFunc(ctx, payload)
	}
	return &domain.ConfirmOrderResult{TransactionCode: "mock-transaction"}, nil
}

func (m *MockProvider) RefundOrder(ctx context.Context, payload *domain.OrderRefundedPayload) error {
	m.RefundOrderCalled = true
	if m.RefundOrderFunc != nil {
		return m.RefundOrderFunc(ctx, payload)
	}
	return nil
}

func (m *MockProvider) CancelOrder(ctx context.Context, payload *domain.OrderCancelledPayload) error {
	m.CancelOrderCalled = true
	if m.CancelOrderFunc != nil {
		return m.CancelOrderFunc(ctx, payload)
	}
	return nil
}

func (m *MockProvider) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}
