package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/atm_backend/internal/apperrors"
	"github.com/SscSPs/atm_backend/internal/core/dispenser"
	"github.com/SscSPs/atm_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/atm_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/atm_backend/internal/core/ports/services"
	"github.com/SscSPs/atm_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// cashService implements inventory administration of the dispenser.
type cashService struct {
	BaseService
	dispenser   *dispenser.Dispenser
	journalRepo portsrepo.JournalRepositoryFacade
	now         func() time.Time
}

// NewCashService creates the inventory administration service.
func NewCashService(d *dispenser.Dispenser, options ...ServiceOption) portssvc.CashSvcFacade {
	o := applyOptions(options)
	return &cashService{
		dispenser:   d,
		journalRepo: o.journalRepo,
		now:         o.now,
	}
}

var _ portssvc.CashSvcFacade = (*cashService)(nil)

func (s *cashService) ListSections(ctx context.Context) (*dto.CashSectionsResponse, error) {
	resp := dto.ToCashSectionsResponse(s.dispenser.Sections())
	return &resp, nil
}

func (s *cashService) GetTotalBalance(ctx context.Context) (decimal.Decimal, error) {
	return s.dispenser.TotalBalance(), nil
}

func (s *cashService) InsertSections(ctx context.Context, req dto.InsertSectionsRequest, operator string) (*dto.CashSectionsResponse, error) {
	sections, err := s.toSections(req.Sections)
	if err != nil {
		s.LogWarn(ctx, err, "Section load rejected", slog.String("operator", operator))
		return nil, err
	}

	if err := s.dispenser.InsertSections(sections...); err != nil {
		s.LogWarn(ctx, err, "Section load rejected", slog.String("operator", operator))
		return nil, err
	}

	loaded := decimal.Zero
	banknotes := make(map[int64]int64, len(sections))
	for _, section := range sections {
		loaded = loaded.Add(section.Value())
		banknotes[int64(section.Denomination())] = section.Count()
	}
	s.LogInfo(ctx, "Cash sections loaded",
		slog.String("operator", operator),
		slog.Int("sections", len(sections)),
		slog.String("loaded", loaded.String()))

	recordEntry(ctx, &s.BaseService, s.journalRepo, s.now, domain.JournalEntry{
		Operation: domain.OperationInsertSections,
		Amount:    loaded,
		Banknotes: banknotes,
		CreatedBy: operator,
	})

	return s.ListSections(ctx)
}

func (s *cashService) toSections(in []dto.CashSectionRequest) ([]domain.CashSection, error) {
	if len(in) == 0 {
		return nil, fmt.Errorf("%w: at least one cash section is required", apperrors.ErrValidation)
	}

	catalog := s.dispenser.Catalog()
	seen := make(map[int64]struct{}, len(in))
	sections := make([]domain.CashSection, 0, len(in))
	for _, req := range in {
		d, ok := catalog.Lookup(req.Value)
		if !ok {
			return nil, fmt.Errorf("%w: banknote %d is not accepted by this dispenser", apperrors.ErrValidation, req.Value)
		}
		if _, dup := seen[req.Value]; dup {
			return nil, fmt.Errorf("%w: cash section for %d listed twice", apperrors.ErrValidation, req.Value)
		}
		seen[req.Value] = struct{}{}

		capacity := domain.MaxSectionCapacity
		if req.Capacity != nil {
			capacity = *req.Capacity
		}
		section, err := domain.NewCashSectionWithCapacity(d, req.Amount, capacity)
		if err != nil {
			return nil, err
		}
		sections = append(sections, section)
	}
	return sections, nil
}
