package lib

import (
	"context"
	"fmt"
	"os"

	"github.com/stripe/stripe-go/v82"
)

var stripeClient *stripe.Client

func GetStripeClient() *stripe.Client {
	if stripeClient != nil {
		return stripeClient
	}
	apiKey := os.Getenv("STRIPE_SECRET_KEY")
	sc := stripe.NewClient(apiKey)
	stripeClient = sc

	return sc
}

func NewStripeClient(c *stripe.Client) {
	stripeClient = c
}

// CreateCheckoutSession builds a hosted checkout for a single ad-hoc line
// item. Amount is in the major unit; metadata rides along for the webhook.
func CreateCheckoutSession(origin, productName string, amount float64, metadata map[string]string) (*stripe.CheckoutSession, error) {
	sc := GetStripeClient()
	successUrl := fmt.Sprintf("%s/payment/success?session_id={CHECKOUT_SESSION_ID}", origin)
	cancelUrl := fmt.Sprintf("%s/payment/cancel", origin)
	createParams := stripe.CheckoutSessionCreateParams{
		SuccessURL: stripe.String(successUrl),
		CancelURL:  stripe.String(cancelUrl),
		UIMode:     stripe.String("hosted"),
		Mode:       stripe.String("payment"),
		LineItems: []*stripe.CheckoutSessionCreateLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionCreateLineItemPriceDataParams{
					Currency:   stripe.String("usd"),
					UnitAmount: stripe.Int64(int64(amount * 100)),
					ProductData: &stripe.CheckoutSessionCreateLineItemPriceDataProductDataParams{
						Name: stripe.String(productName),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		Metadata: metadata,
	}
	return sc.V1CheckoutSessions.Create(context.Background(), &createParams)
}

func RetrieveCheckoutSession(sessionId string) (*stripe.CheckoutSession, error) {
	sc := GetStripeClient()
	return sc.V1CheckoutSessions.Retrieve(context.Background(), sessionId, &stripe.CheckoutSessionRetrieveParams{})
}
