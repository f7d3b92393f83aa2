// services/ledger_service.go
package services

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/shreshthco18-lgtm/calorie-tracker/models"
)

// LedgerService owns all reads and writes of DayRecords. Every mutation is a
// single upsert statement, so concurrent writers to the same date are
// serialized by the database rather than by anything in-process.
type LedgerService struct {
	db *gorm.DB
}

func NewLedgerService(db *gorm.DB) *LedgerService {
	return &LedgerService{db: db}
}

// ListDays returns every DayRecord, most recent date first.
func (s *LedgerService) ListDays(ctx context.Context) ([]models.DayRecord, error) {
	var days []models.DayRecord
	err := s.db.WithContext(ctx).
		Order("date desc").
		Find(&days).Error
	return days, err
}

// AddMeal folds one meal's calories and protein into the record for date,
// creating the record if this is the first meal logged for that day.
// Insert-or-increment happens in one statement; there is no
// read-increment-write window to lose an update in.
func (s *LedgerService) AddMeal(ctx context.Context, date string, calories, protein float64) (*models.DayRecord, error) {
	rec := models.DayRecord{
		Date:          date,
		TotalCalories: calories,
		TotalProtein:  protein,
	}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "date"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"total_calories": gorm.Expr("total_calories + ?", calories),
				"total_protein":  gorm.Expr("total_protein + ?", protein),
			}),
		}).
		Create(&rec).Error
	if err != nil {
		return nil, err
	}
	return s.getDay(ctx, date)
}

// ResetDay zeroes the totals for date, creating an already-zeroed record if
// none exists. Calling it again is a no-op on an already-reset day.
func (s *LedgerService) ResetDay(ctx context.Context, date string) (*models.DayRecord, error) {
	rec := models.DayRecord{Date: date}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "date"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"total_calories": 0,
				"total_protein":  0,
			}),
		}).
		Create(&rec).Error
	if err != nil {
		return nil, err
	}
	return s.getDay(ctx, date)
}

// getDay reloads the record after an upsert; on the conflict path Create does
// not report the totals the database actually arrived at.
func (s *LedgerService) getDay(ctx context.Context, date string) (*models.DayRecord, error) {
	var rec models.DayRecord
	if err := s.db.WithContext(ctx).Where("date = ?", date).First(&rec).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}
