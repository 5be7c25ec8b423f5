package transaction

import (
	"context"
	"time"

	"github.com/carson-networks/budget-fx/internal/currency"
	"github.com/carson-networks/budget-fx/internal/operator/actions"
	"github.com/carson-networks/budget-fx/internal/service"
)

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID               string  `json:"id" doc:"Transaction UUID"`
	UserID           string  `json:"userID" doc:"Owning user UUID"`
	Name             string  `json:"name" doc:"Name of the transaction"`
	Description      *string `json:"description,omitempty" doc:"Free-form description"`
	Amount           string  `json:"amount" doc:"Decimal amount in currency"`
	Currency         string  `json:"currency" doc:"ISO 4217 code of amount"`
	OriginalAmount   string  `json:"originalAmount" doc:"Decimal amount as recorded"`
	OriginalCurrency string  `json:"originalCurrency" doc:"ISO 4217 code the transaction was recorded in"`
	Converted        bool    `json:"converted" doc:"Whether amount was converted into the user's base currency"`
	Type             string  `json:"type" enum:"Income,Expense" doc:"Transaction type"`
	GroupID          *string `json:"groupID,omitempty" doc:"Group UUID"`
	TransactionDate  string  `json:"transactionDate" doc:"RFC3339 transaction date"`
	CreatedAt        string  `json:"createdAt" doc:"RFC3339 creation time"`
}

// actionProcessor runs write actions through the operator queue.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

func fromService(tx service.Transaction) Transaction {
	amount := tx.Value.Amount.String()
	if tx.Converted() {
		amount = tx.Value.Amount.StringFixed(currency.Places)
	}

	resp := Transaction{
		ID:               tx.ID.String(),
		UserID:           tx.UserID.String(),
		Name:             tx.Name,
		Description:      tx.Description,
		Amount:           amount,
		Currency:         tx.Value.Currency.String(),
		OriginalAmount:   tx.Original.Amount.String(),
		OriginalCurrency: tx.Original.Currency.String(),
		Converted:        tx.Converted(),
		Type:             tx.Type.String(),
		TransactionDate:  tx.TransactionDate.Format(time.RFC3339),
		CreatedAt:        tx.CreatedAt.Format(time.RFC3339),
	}
	if tx.GroupID != nil {
		groupID := tx.GroupID.String()
		resp.GroupID = &groupID
	}
	return resp
}
