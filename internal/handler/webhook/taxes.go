package webhook

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/ravenmoor/taxbridge/internal/domain"
	"github.com/ravenmoor/taxbridge/internal/handler"
	"github.com/ravenmoor/taxbridge/internal/taxes"
	"github.com/ravenmoor/taxbridge/internal/telemetry"
)

// Webhook event type names, used for metrics and logging labels.
const (
	EventCheckoutCalculateTaxes = "checkout_calculate_taxes"
	EventOrderCalculateTaxes    = "order_calculate_taxes"
	EventOrderConfirmed         = "order_confirmed"
	EventOrderRefunded          = "order_refunded"
	EventOrderCancelled         = "order_cancelled"
)

const maxPayloadBytes = 1 << 20 // 1 MiB

// TaxesHandler handles commerce platform tax webhook events. Each platform
// event gets its own route; the handler decodes the payload, delegates to
// the configured tax provider and maps the result (or error) back onto the
// platform's response contract.
type TaxesHandler struct {
	provider taxes.Provider
	logger   *slog.Logger
}

// NewTaxesHandler creates a webhook handler backed by the given tax provider.
func NewTaxesHandler(provider taxes.Provider, logger *slog.Logger) *TaxesHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TaxesHandler{
		provider: provider,
		logger:   logger,
	}
}

// CheckoutCalculateTaxes handles the checkout-calculate-taxes event.
func (h *TaxesHandler) CheckoutCalculateTaxes(w http.ResponseWriter, r *http.Request) {
	h.calculateTaxes(w, r, EventCheckoutCalculateTaxes)
}

// OrderCalculateTaxes handles the order-calculate-taxes event.
func (h *TaxesHandler) OrderCalculateTaxes(w http.ResponseWriter, r *http.Request) {
	h.calculateTaxes(w, r, EventOrderCalculateTaxes)
}

func (h *TaxesHandler) calculateTaxes(w http.ResponseWriter, r *http.Request, eventType string) {
	done := h.track(eventType)

	var payload domain.CalculateTaxesPayload
	if err := h.decode(w, r, eventType, &payload); err != nil {
		done(err)
		return
	}

	h.logger.Info("processing calculate-taxes webhook",
		"event_type", eventType,
		"source_type", payload.TaxBase.SourceObject.Type,
		"source_id", payload.TaxBase.SourceObject.ID,
		"line_count", len(payload.TaxBase.Lines),
	)

	response, err := h.provider.CalculateTaxes(r.Context(), &payload)
	if err != nil {
		h.fail(w, r, eventType, err)
		done(err)
		return
	}

	if telemetry.Business != nil {
		sourceType := payload.TaxBase.SourceObject.Type
		telemetry.Business.TaxCalculations.WithLabelValues(sourceType).Inc()
		telemetry.Business.TaxLineCount.WithLabelValues(sourceType).Observe(float64(len(payload.TaxBase.Lines)))
	}

	handler.JSON(w, http.StatusOK, response)
	done(nil)
}

// OrderConfirmed handles the order-confirmed event. The returned transaction
// code is stored by the platform in order metadata so later refund and void
// webhooks can reference the provider transaction.
func (h *TaxesHandler) OrderConfirmed(w http.ResponseWriter, r *http.Request) {
	done := h.track(EventOrderConfirmed)

	var payload domain.OrderConfirmedPayload
	if err := h.decode(w, r, EventOrderConfirmed, &payload); err != nil {
		done(err)
		return
	}

	h.logger.Info("processing order-confirmed webhook", "order_id", payload.Order.ID)

	result, err := h.provider.ConfirmOrder(r.Context(), &payload)
	if err != nil {
		h.fail(w, r, EventOrderConfirmed, err)
		done(err)
		return
	}

	handler.JSON(w, http.StatusOK, result)
	done(nil)
}

// OrderRefunded handles the order-refunded event.
func (h *TaxesHandler) OrderRefunded(w http.ResponseWriter, r *http.Request) {
	done := h.track(EventOrderRefunded)

	var payload domain.OrderRefundedPayload
	if err := h.decode(w, r, EventOrderRefunded, &payload); err != nil {
		done(err)
		return
	}

	h.logger.Info("processing order-refunded webhook", "order_id", payload.Order.ID)

	if err := h.provider.RefundOrder(r.Context(), &payload); err != nil {
		h.fail(w, r, EventOrderRefunded, err)
		done(err)
		return
	}

	handler.JSON(w, http.StatusOK, map[string]bool{"received": true})
	done(nil)
}

// OrderCancelled handles the order-cancelled event.
func (h *TaxesHandler) OrderCancelled(w http.ResponseWriter, r *http.Request) {
	done := h.track(EventOrderCancelled)

	var payload domain.OrderCancelledPayload
	if err := h.decode(w, r, EventOrderCancelled, &payload); err != nil {
		done(err)
		return
	}

	h.logger.Info("processing order-cancelled webhook", "order_id", payload.Order.ID)

	if err := h.provider.CancelOrder(r.Context(), &payload); err != nil {
		h.fail(w, r, EventOrderCancelled, err)
		done(err)
		return
	}

	handler.JSON(w, http.StatusOK, map[string]bool{"received": true})
	done(nil)
}

// decode reads and unmarshals the webhook payload. On failure it writes the
// error response itself and returns the error so the caller can stop.
func (h *TaxesHandler) decode(w http.ResponseWriter, r *http.Request, eventType string, v any) error {
	body := http.MaxBytesReader(w, r.Body, maxPayloadBytes)
	if err := json.NewDecoder(body).Decode(v); err != nil {
		h.logger.Warn("failed to decode webhook payload", "event_type", eventType, "error", err)
		wrapped := domain.WrapError(err, domain.EINVALID, "webhook.decode", "invalid webhook payload")
		handler.ErrorResponse(w, r, wrapped)
		return wrapped
	}
	return nil
}

// fail writes the error response and reports the failure.
func (h *TaxesHandler) fail(w http.ResponseWriter, r *http.Request, eventType string, err error) {
	code := domain.ErrorCode(err)

	h.logger.Error("webhook processing failed",
		"event_type", eventType,
		"code", code,
		"error", err,
	)

	if code == domain.EINTERNAL || code == taxes.CodeProvider {
		telemetry.CaptureErrorWithEvent(err, eventType, map[string]interface{}{
			"path": r.URL.Path,
		})
	}

	handler.ErrorResponse(w, r, err)
}

// track records the received counter and returns a completion callback
// that records latency and the processed/failed outcome.
func (h *TaxesHandler) track(eventType string) func(error) {
	start := time.Now()

	if telemetry.Business != nil {
		telemetry.Business.WebhookReceived.WithLabelValues(eventType).Inc()
	}

	return func(err error) {
		if telemetry.Business == nil {
			return
		}

		telemetry.Business.WebhookLatency.WithLabelValues(eventType).Observe(time.Since(start).Seconds())
		if err != nil {
			telemetry.Business.WebhookFailed.WithLabelValues(eventType, domain.ErrorCode(err)).Inc()
			return
		}
		telemetry.Business.WebhookProcessed.WithLabelValues(eventType).Inc()
	}
}
