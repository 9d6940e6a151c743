package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/bizledger/internal/apperrors"
	"github.com/SscSPs/bizledger/internal/core/domain"
	portsrepo "github.com/SscSPs/bizledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bizledger/internal/core/ports/services"
	"github.com/SscSPs/bizledger/internal/dto"
	"github.com/SscSPs/bizledger/internal/utils/accounting"
)

// ledgerService recomputes the derived financial state on every call.
type ledgerService struct {
	BaseService
	snapshotRepo  portsrepo.SnapshotRepository
	upcomingLimit int
}

// NewLedgerService creates the read side of the ledger. upcomingLimit caps the
// upcoming accounts in the overview; zero uses the engine default.
func NewLedgerService(snapshotRepo portsrepo.SnapshotRepository, upcomingLimit int, options ...ServiceOption) portssvc.LedgerSvcFacade {
	return &ledgerService{
		BaseService:   newBaseService(options...),
		snapshotRepo:  snapshotRepo,
		upcomingLimit: upcomingLimit,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

func (s *ledgerService) loadSnapshot(ctx context.Context, companyID string) (domain.Snapshot, error) {
	snap, err := s.snapshotRepo.LoadSnapshot(ctx, companyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load ledger snapshot", slog.String("company_id", companyID))
		return domain.Snapshot{}, fmt.Errorf("failed to load ledger snapshot: %w", err)
	}
	s.LogDebug(ctx, "Ledger snapshot loaded",
		slog.Int("transactions", len(snap.Transactions)),
		slog.Int("accounts", len(snap.Accounts)),
		slog.Int("investments", len(snap.Investments)),
		slog.Int("debts", len(snap.Debts)))
	return snap, nil
}

// period resolves the optional from/to override. A missing from starts at the
// beginning of time, a missing to ends with today.
func (s *ledgerService) period(params dto.OverviewParams) (*domain.Period, error) {
	if params.From == "" && params.To == "" {
		return nil, nil
	}
	from, to, err := dto.ParseDateRange(params.From, params.To, s.Location())
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	p := domain.Period{Start: time.Time{}, End: s.Today().AddDate(0, 0, 1)}
	if from != nil {
		p.Start = *from
	}
	if to != nil {
		p.End = *to
	}
	if !p.Start.Before(p.End) {
		return nil, apperrors.Validationf("reporting period is empty")
	}
	return &p, nil
}

func (s *ledgerService) derive(ctx context.Context, companyID string, period *domain.Period) (*domain.DerivedState, string, error) {
	snap, err := s.loadSnapshot(ctx, companyID)
	if err != nil {
		return nil, "", err
	}
	currency := domain.CurrencyOrDefault(snap.CurrencyCode)

	state := accounting.Derive(snap, accounting.DeriveOptions{
		Now:           s.Now(),
		Location:      s.Location(),
		Period:        period,
		CurrencyCode:  currency,
		UpcomingLimit: s.upcomingLimit,
	})
	return &state, currency, nil
}

func (s *ledgerService) Overview(ctx context.Context, companyID string, params dto.OverviewParams) (*domain.DerivedState, string, error) {
	period, err := s.period(params)
	if err != nil {
		return nil, "", err
	}
	return s.derive(ctx, companyID, period)
}

func (s *ledgerService) FinancialSummary(ctx context.Context, companyID string) (*domain.FinancialSummary, error) {
	state, _, err := s.derive(ctx, companyID, nil)
	if err != nil {
		return nil, err
	}
	return &state.Summary, nil
}

func (s *ledgerService) Counterparties(ctx context.Context, companyID string, params dto.CounterpartyParams) ([]domain.CounterpartySummary, error) {
	snap, err := s.loadSnapshot(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return accounting.FilterCounterparties(accounting.RollupCounterparties(snap.Transactions), params.Query), nil
}

func (s *ledgerService) Achievements(ctx context.Context, companyID string) ([]domain.Achievement, error) {
	snap, err := s.loadSnapshot(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return accounting.EvaluateAchievements(snap.Transactions, snap.Accounts, s.Now(), s.Location()), nil
}
