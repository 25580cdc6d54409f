package dto

import (
	"github.com/SscSPs/atm_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CashSectionRequest describes one section to load into the dispenser.
// Capacity is optional; omitted means unlimited.
type CashSectionRequest struct {
	Value    int64  `json:"value" binding:"required,facevalue"`
	Amount   int64  `json:"amount" binding:"gte=0"`
	Capacity *int64 `json:"capacity" binding:"omitempty,gte=0"`
}

// InsertSectionsRequest defines a load or top-up of one or more sections.
type InsertSectionsRequest struct {
	Sections []CashSectionRequest `json:"sections" binding:"required,min=1,dive"`
}

// CashSectionResponse defines the data returned for a cash section.
type CashSectionResponse struct {
	Value    int64           `json:"value"`
	Amount   int64           `json:"amount"`
	Capacity int64           `json:"capacity"`
	Total    decimal.Decimal `json:"total"`
}

// CashSectionsResponse wraps the inventory snapshot.
type CashSectionsResponse struct {
	Sections []CashSectionResponse `json:"sections"`
	Total    decimal.Decimal       `json:"total"`
}

// TotalBalanceResponse defines the data returned for the dispenser total.
type TotalBalanceResponse struct {
	Total decimal.Decimal `json:"total"`
}

// ToCashSectionResponse converts a domain.CashSection to CashSectionResponse DTO
func ToCashSectionResponse(s domain.CashSection) CashSectionResponse {
	return CashSectionResponse{
		Value:    int64(s.Denomination()),
		Amount:   s.Count(),
		Capacity: s.Capacity(),
		Total:    s.Value(),
	}
}

// ToCashSectionsResponse converts a snapshot of sections and sums their value.
func ToCashSectionsResponse(sections []domain.CashSection) CashSectionsResponse {
	res := CashSectionsResponse{
		Sections: make([]CashSectionResponse, len(sections)),
		Total:    decimal.Zero,
	}
	for i, s := range sections {
		res.Sections[i] = ToCashSectionResponse(s)
		res.Total = res.Total.Add(s.Value())
	}
	return res
}
