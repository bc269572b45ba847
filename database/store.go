package database

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"auditpro-backend/models"
)

// ReportStore is the gorm-backed persistence used by the report
// orchestrator. Saves are upserts-by-id: the full nested record replaces
// whatever was stored under that id, matching the API's REPLACE semantics.
type ReportStore struct {
	db *gorm.DB
}

func NewReportStore(db *gorm.DB) *ReportStore {
	return &ReportStore{db: db}
}

func (s *ReportStore) SaveReport(ctx context.Context, r *models.Report) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(r).Error
}
