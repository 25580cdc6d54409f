package services

import (
	"context"

	"github.com/SscSPs/atm_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// CashSvcFacade defines administrative inventory operations on the dispenser
type CashSvcFacade interface {
	// ListSections returns a snapshot of every cash section and the inventory total.
	ListSections(ctx context.Context) (*dto.CashSectionsResponse, error)

	// InsertSections replaces the given sections (initial load or top-up).
	InsertSections(ctx context.Context, req dto.InsertSectionsRequest, operator string) (*dto.CashSectionsResponse, error)

	// GetTotalBalance returns the value of all banknotes in the dispenser.
	GetTotalBalance(ctx context.Context) (decimal.Decimal, error)
}
