package actions

import (
	"context"
	"errors"

	"github.com/carson-networks/budget-fx/internal/storage"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user with this email already exists")
	// ErrInvalidInput wraps every validation failure raised by an action.
	ErrInvalidInput = errors.New("invalid input")
)

type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}

// IAfterCommit is implemented by actions with side effects that must only run once
// their transaction has committed.
type IAfterCommit interface {
	AfterCommit(ctx context.Context) error
}
