package inbound

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/pasarhub/pasar/internal/notification/usecase"
	"github.com/pasarhub/pasar/internal/pkg/instrument"
	"github.com/pasarhub/pasar/internal/pkg/messaging"
	"github.com/pasarhub/pasar/internal/pkg/uid"
	"github.com/pasarhub/pasar/internal/shared/event"
)

const keyOfCorrelationID string = "cID"

type MQHandler struct {
	uc   uc
	uuid uid.StringID
	ins  instrument.Instrumentation
}

func (h *MQHandler) ensureCorrelationID(ctx context.Context, headers []messaging.Header) context.Context {
	for i := range headers {
		if headers[i].Key == keyOfCorrelationID {
			return instrument.SetCorrelationID(ctx, string(headers[i].Value))
		}
	}
	return instrument.SetCorrelationID(ctx, h.uuid.Generate())
}

func (h *MQHandler) VerificationCodeNotification(ctx context.Context, msg messaging.Message) error {
	ctx = h.ensureCorrelationID(ctx, msg.Headers())

	ctx, span := h.ins.Tracer("notification.inbound.mq").Start(ctx, "VerificationCodeNotification")
	defer span.End()

	body := msg.Body()
	slog.InfoContext(ctx, "consume: verification code notification", "msg_body", string(body))

	var payload event.VerificationCodeMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		slog.ErrorContext(ctx, "failed to parse message body of verification code notification", "msg_body", string(body), "error", err)
		return nil
	}

	if err := h.uc.ConsumeVerificationCode(ctx, usecase.ConsumeVerificationCodeInput{
		AccountID: payload.AccountID,
		Email:     payload.Email,
		Code:      payload.Code,
		ExpiresAt: payload.ExpiresAt,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to consume verification code", "msg_body", string(body), "error", err)
		return err
	}

	return nil
}

func (h *MQHandler) SellerDecisionNotification(ctx context.Context, msg messaging.Message) error {
	ctx = h.ensureCorrelationID(ctx, msg.Headers())

	ctx, span := h.ins.Tracer("notification.inbound.mq").Start(ctx, "SellerDecisionNotification")
	defer span.End()

	body := msg.Body()
	slog.InfoContext(ctx, "consume: seller decision notification", "msg_body", string(body))

	var payload event.SellerDecisionMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		slog.ErrorContext(ctx, "failed to parse message body of seller decision notification", "msg_body", string(body), "error", err)
		return nil
	}

	if err := h.uc.ConsumeSellerDecision(ctx, usecase.ConsumeSellerDecisionInput{
		AccountID: payload.AccountID,
		Email:     payload.Email,
		Approved:  payload.Approved,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to consume seller decision", "msg_body", string(body), "error", err)
		return err
	}

	return nil
}
