package payments

import (
	"context"
	"errors"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

var ErrNotConfigured = errors.New("payment provider not configured")

// Client wraps the MercadoPago checkout preference API. Top-ups only need
// a hosted checkout link; settlement status comes back via webhook.
type Client struct {
	prefs preference.Client
}

func New(accessToken string) (*Client, error) {
	if accessToken == "" {
		return &Client{}, nil
	}

	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, err
	}

	return &Client{prefs: preference.NewClient(cfg)}, nil
}

func (c *Client) Enabled() bool {
	return c.prefs != nil
}

type Checkout struct {
	PreferenceID string
	InitPoint    string
}

func (c *Client) CreateTopUpCheckout(
	ctx context.Context,
	reference string,
	amount float64,
) (*Checkout, error) {

	if c.prefs == nil {
		return nil, ErrNotConfigured
	}

	resp, err := c.prefs.Create(ctx, preference.Request{
		ExternalReference: reference,
		Items: []preference.ItemRequest{
			{
				Title:     "Salon credit top-up",
				Quantity:  1,
				UnitPrice: amount,
			},
		},
	})
	if err != nil {
		return nil, err
	}

	return &Checkout{
		PreferenceID: resp.ID,
		InitPoint:    resp.InitPoint,
	}, nil
}
