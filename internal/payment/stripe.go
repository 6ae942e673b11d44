package payment

import (
	"context"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

// IntentClient is the stable contract to the external payment processor:
// an amount in minor units goes in, a client-facing confirmation secret
// comes out.
type IntentClient interface {
	CreateIntent(ctx context.Context, amount int64) (clientSecret string, err error)
}

// StripeClient creates card payment intents in a fixed currency.
type StripeClient struct {
	api      *client.API
	currency string
}

func NewStripeClient(secretKey string) *StripeClient {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeClient{
		api:      api,
		currency: string(stripe.CurrencyUSD),
	}
}

func (s *StripeClient) CreateIntent(ctx context.Context, amount int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(s.currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	pi, err := s.api.PaymentIntents.New(params)
	if err != nil {
		return "", err
	}
	return pi.ClientSecret, nil
}
