package repositories

import (
	"context"

	"github.com/anthonybir/ipupy-tesoreria-sub014/internal/core/domain"
)

// FundReader defines read operations for fund directory data. The stored
// balance cache is maintained outside this core; nothing here writes it.
type FundReader interface {
	// FindFundByID retrieves a fund by its unique identifier.
	FindFundByID(ctx context.Context, fundID string) (*domain.Fund, error)

	// FindFundByName retrieves a fund by its canonical name.
	FindFundByName(ctx context.Context, name string) (*domain.Fund, error)

	// ListActiveFunds retrieves every active fund.
	ListActiveFunds(ctx context.Context) ([]domain.Fund, error)
}

// ChurchReader defines the read surface this core needs from the church
// directory.
type ChurchReader interface {
	// FindChurchByID retrieves a church by its unique identifier.
	FindChurchByID(ctx context.Context, churchID string) (*domain.Church, error)
}

// UserReader defines the read surface the login boundary needs.
type UserReader interface {
	// FindUserByEmail retrieves an active user by email.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}
