package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/apereira/fluxo/internal/finance"
)

// ProjectionService exposes the balance, forecast and projection
// operations. Each method loads one snapshot and computes from it; on a
// repository failure it returns the zero value alongside the error so
// callers always have a safe default to render.
type ProjectionService struct {
	Loader *SnapshotLoader
	Log    *logrus.Logger

	// Now anchors every projection; tests pin it to a fixed date.
	Now func() time.Time
}

func (s *ProjectionService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

// UnifiedBalance returns the consolidated current balance with its
// per-source breakdown.
func (s *ProjectionService) UnifiedBalance(ctx context.Context) (finance.Balance, error) {
	snap, err := s.Loader.Load(ctx)
	if err != nil {
		return finance.Balance{}, err
	}
	b := finance.UnifiedBalance(snap, s.now())
	s.Log.WithField("balance", b.Total).Debug("unified balance computed")
	return b, nil
}

// MonthlyForecast returns the expected income/expense totals for a month.
func (s *ProjectionService) MonthlyForecast(ctx context.Context, year int, month time.Month) (finance.Forecast, error) {
	snap, err := s.Loader.Load(ctx)
	if err != nil {
		return finance.Forecast{}, err
	}
	return finance.MonthlyForecast(snap, year, month), nil
}

// DailyCashFlow projects the balance day by day for the given horizon.
func (s *ProjectionService) DailyCashFlow(ctx context.Context, months int) ([]finance.DailyPoint, error) {
	snap, err := s.Loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	points := finance.DailyCashFlow(snap, s.now(), months)
	s.Log.WithFields(logrus.Fields{"months": months, "days": len(points)}).Debug("daily cash flow projected")
	return points, nil
}

// GenerateProjection projects the balance month by month for the given
// horizon; this is the coarse series break-even scans.
func (s *ProjectionService) GenerateProjection(ctx context.Context, months int) ([]finance.MonthPoint, error) {
	snap, err := s.Loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	return finance.MonthlyProjection(snap, s.now(), months), nil
}

// BreakEvenMonth locates the first non-negative month in a 12-month
// projection.
func (s *ProjectionService) BreakEvenMonth(ctx context.Context) (finance.BreakEven, error) {
	snap, err := s.Loader.Load(ctx)
	if err != nil {
		return finance.BreakEven{}, err
	}
	return finance.BreakEvenMonth(snap, s.now()), nil
}

// TotalIncomes summarizes configured incomes.
func (s *ProjectionService) TotalIncomes(ctx context.Context) (finance.IncomeTotals, error) {
	snap, err := s.Loader.Load(ctx)
	if err != nil {
		return finance.IncomeTotals{}, err
	}
	return finance.TotalIncomes(snap), nil
}

// CurrentMonthExpenses totals realized spending in the current month.
func (s *ProjectionService) CurrentMonthExpenses(ctx context.Context) (float64, error) {
	snap, err := s.Loader.Load(ctx)
	if err != nil {
		return 0, err
	}
	return finance.CurrentMonthExpenses(snap, s.now()), nil
}

// DashboardStats returns the dashboard headline figures.
func (s *ProjectionService) DashboardStats(ctx context.Context) (finance.Stats, error) {
	snap, err := s.Loader.Load(ctx)
	if err != nil {
		return finance.Stats{}, err
	}
	return finance.DashboardStats(snap, s.now()), nil
}

// DailyBudgetSummary reports budget vs spend for each day of the current
// month.
func (s *ProjectionService) DailyBudgetSummary(ctx context.Context) ([]finance.DaySummary, error) {
	snap, err := s.Loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	return finance.DailyBudgetSummary(snap, s.now()), nil
}

// CompareBudgetVsSpent nets one day's recorded spends against its budget.
func (s *ProjectionService) CompareBudgetVsSpent(ctx context.Context, date time.Time) (finance.BudgetComparison, error) {
	snap, err := s.Loader.Load(ctx)
	if err != nil {
		return finance.BudgetComparison{}, err
	}
	return finance.CompareBudgetVsSpent(snap, date), nil
}
