package payment

import (
	"context"

	"lienzo/models"
)

// PaymentGateway abstracts the hosted-payment leg of an enrollment: create a
// transaction to redirect the student to, then commit it when the gateway
// redirects back with a token.
type PaymentGateway interface {
	CreateTransaction(ctx context.Context, buyOrder, sessionID string, amount int64) (*models.TransbankPayment, error)
	CommitTransaction(ctx context.Context, tokenWS string) (*models.TransbankCommitResult, error)
}
