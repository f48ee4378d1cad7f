package payment

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

const statusApproved = "approved"

type MercadoPago struct {
	client payment.Client
}

func NewMercadoPago(accessToken string) (*MercadoPago, error) {
	cfg, err := config.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("mercadopago config: %w", err)
	}
	return &MercadoPago{client: payment.NewClient(cfg)}, nil
}

func (m *MercadoPago) Authorize(ctx context.Context, c Charge) (Receipt, error) {
	method := c.Method
	if method == "" {
		method = "visa"
	}

	resp, err := m.client.Create(ctx, payment.Request{
		TransactionAmount: c.Amount,
		PaymentMethodID:   method,
		Token:             c.CardToken,
		Installments:      1,
		Description:       c.Description,
		ExternalReference: c.Reference,
		Payer: &payment.PayerRequest{
			Email: c.Email,
		},
	})
	if err != nil {
		return Receipt{}, fmt.Errorf("mercadopago create: %w", err)
	}

	receipt := Receipt{Reference: strconv.Itoa(resp.ID), Status: resp.Status}
	if resp.Status != statusApproved {
		return receipt, fmt.Errorf("%w: %s", ErrDeclined, resp.StatusDetail)
	}
	return receipt, nil
}
