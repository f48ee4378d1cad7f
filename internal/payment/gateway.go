package payment

import (
	"context"
	"errors"
)

var ErrDeclined = errors.New("payment declined")

// Charge is what the customer pays: the service price plus platform fee.
type Charge struct {
	Amount      float64
	Email       string
	CardToken   string
	Method      string
	Description string
	Reference   string
}

type Receipt struct {
	Reference string
	Status    string
}

type Gateway interface {
	Authorize(ctx context.Context, c Charge) (Receipt, error)
}
