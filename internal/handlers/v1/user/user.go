package user

import (
	"context"
	"time"

	"github.com/carson-networks/budget-fx/internal/operator/actions"
	"github.com/carson-networks/budget-fx/internal/service"
)

// User is the API response model for a user.
type User struct {
	ID           string `json:"id" doc:"User UUID"`
	Email        string `json:"email" doc:"Email address"`
	DisplayName  string `json:"displayName" doc:"Display name"`
	BaseCurrency string `json:"baseCurrency" doc:"ISO 4217 code transactions are normalized into"`
	CreatedAt    string `json:"createdAt" doc:"RFC3339 creation time"`
}

// actionProcessor runs write actions through the operator queue.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

func fromService(u *service.User) User {
	return User{
		ID:           u.ID.String(),
		Email:        u.Email,
		DisplayName:  u.DisplayName,
		BaseCurrency: u.BaseCurrency.String(),
		CreatedAt:    u.CreatedAt.Format(time.RFC3339),
	}
}
