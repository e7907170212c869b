package service

import (
	"context"
	"time"

	"github.com/spendtrack/backend/internal/models"
	"github.com/spendtrack/backend/internal/repository"
	"github.com/spendtrack/backend/internal/utils"
)

// SummaryService computes spending summaries
type SummaryService struct {
	expenseRepo repository.ExpenseRepository
	// now is injectable for tests
	now func() time.Time
}

// NewSummaryService creates a new SummaryService
func NewSummaryService(expenseRepo repository.ExpenseRepository) *SummaryService {
	return &SummaryService{expenseRepo: expenseRepo, now: time.Now}
}

// Summarize returns a user's spending summary. The month defaults to the
// current one when empty. The yearly total always covers the current
// calendar year up to now, even when an earlier month is requested.
func (s *SummaryService) Summarize(ctx context.Context, userID int64, month string) (*models.Summary, error) {
	now := s.now()

	if month == "" {
		month = now.Format(monthLayout)
	}

	monthStart, err := utils.ParseMonth(month)
	if err != nil {
		return nil, err
	}
	monthEnd := monthStart.AddDate(0, 1, -1)

	byCategory, err := s.expenseRepo.SumByCategory(ctx, userID, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}

	monthTotal := 0.0
	for category, total := range byCategory {
		byCategory[category] = utils.Round2(total)
		monthTotal += total
	}

	yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	yearTotal, err := s.expenseRepo.TotalBetween(ctx, userID, yearStart, now)
	if err != nil {
		return nil, err
	}

	return &models.Summary{
		Month:      month,
		MonthTotal: utils.Round2(monthTotal),
		ByCategory: byCategory,
		YearTotal:  utils.Round2(yearTotal),
	}, nil
}
