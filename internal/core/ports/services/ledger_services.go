package services

import (
	"context"

	"github.com/SscSPs/bizledger/internal/core/domain"
	"github.com/SscSPs/bizledger/internal/dto"
)

// LedgerSvcFacade exposes the derived financial state. Every call loads a
// fresh snapshot and recomputes; nothing is cached.
type LedgerSvcFacade interface {
	Overview(ctx context.Context, companyID string, params dto.OverviewParams) (*domain.DerivedState, string, error)
	FinancialSummary(ctx context.Context, companyID string) (*domain.FinancialSummary, error)
	Counterparties(ctx context.Context, companyID string, params dto.CounterpartyParams) ([]domain.CounterpartySummary, error)
	Achievements(ctx context.Context, companyID string) ([]domain.Achievement, error)
}
