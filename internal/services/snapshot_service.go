package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "financehub/internal/errors"
	"financehub/internal/finance"
	"financehub/internal/models"
	"financehub/internal/pagination"
)

// snapshotService records and lists monthly summary snapshots.
type snapshotService struct {
	db     *gorm.DB
	ledger *Ledger
}

// NewSnapshotService creates a new SnapshotServicer.
func NewSnapshotService(db *gorm.DB, ledger *Ledger) SnapshotServicer {
	return &snapshotService{db: db, ledger: ledger}
}

// RecordSnapshot stores the headline figures for the month containing now.
// Recording the same month again overwrites the earlier figures.
func (s *snapshotService) RecordSnapshot(ctx context.Context, now time.Time) (*models.SummarySnapshot, error) {
	snapshot := computeSnapshot(s.ledger.Snapshot(), now)
	db := s.db.WithContext(ctx)

	var existing models.SummarySnapshot
	err := db.Where("year = ? AND month = ?", snapshot.Year, snapshot.Month).First(&existing).Error
	switch {
	case err == nil:
		snapshot.ID = existing.ID
		if err := db.Model(&existing).Updates(map[string]interface{}{
			"recorded_at":          snapshot.RecordedAt,
			"total_income":         snapshot.TotalIncome,
			"variable_expenses":    snapshot.VariableExpenses,
			"fixed_expenses":       snapshot.FixedExpenses,
			"savings_rate":         snapshot.SavingsRate,
			"net_bank_balance":     snapshot.NetBankBalance,
			"credit_card_debt":     snapshot.CreditCardDebt,
			"net_worth":            snapshot.NetWorth,
			"monthly_contribution": snapshot.MonthlyContribution,
			"monthly_premium":      snapshot.MonthlyPremium,
		}).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := db.Create(snapshot).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	default:
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return snapshot, nil
}

// computeSnapshot takes the month's figures from the dashboard view so the
// two always agree.
func computeSnapshot(c models.Collections, now time.Time) *models.SummarySnapshot {
	now = now.UTC()
	view := finance.Dashboard(c, now.Year(), now.Month())
	return &models.SummarySnapshot{
		Year:                view.Year,
		Month:               view.Month,
		RecordedAt:          now,
		TotalIncome:         view.TotalIncome,
		VariableExpenses:    view.VariableExpenses,
		FixedExpenses:       view.FixedExpenses,
		SavingsRate:         view.SavingsRate,
		NetBankBalance:      view.NetBankBalance,
		CreditCardDebt:      view.CreditCardDebt,
		NetWorth:            view.NetWorth,
		MonthlyContribution: view.MonthlyContribution,
		MonthlyPremium:      view.MonthlyPremium,
	}
}

// GetSnapshots returns snapshots newest period first.
func (s *snapshotService) GetSnapshots(ctx context.Context, page pagination.PageRequest) (*pagination.PageResponse[models.SummarySnapshot], error) {
	page.Defaults()

	var totalItems int64
	base := s.db.WithContext(ctx).Model(&models.SummarySnapshot{})
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var snapshots []models.SummarySnapshot
	if err := base.Order("year DESC, month DESC").Scopes(pagination.Paginate(page)).Find(&snapshots).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(snapshots, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetSnapshot returns the snapshot of one month.
func (s *snapshotService) GetSnapshot(ctx context.Context, year int, month time.Month) (*models.SummarySnapshot, error) {
	var snapshot models.SummarySnapshot
	err := s.db.WithContext(ctx).Where("year = ? AND month = ?", year, int(month)).First(&snapshot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSnapshotNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &snapshot, nil
}
