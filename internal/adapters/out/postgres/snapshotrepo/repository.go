package snapshotrepo

import (
	"context"
	"errors"
	"time"

	"setralog/internal/core/ports"
	"setralog/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var _ ports.SnapshotMirror = (*GormSnapshotRepository)(nil)

// GormSnapshotRepository implements ports.SnapshotMirror with one row per key.
type GormSnapshotRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGormSnapshotRepository creates a repository on db. The schema must exist
// (see postgres.Migrate).
func NewGormSnapshotRepository(db *gorm.DB) *GormSnapshotRepository {
	return &GormSnapshotRepository{db: db, now: time.Now}
}

// Save upserts the payload for key.
func (r *GormSnapshotRepository) Save(ctx context.Context, key string, payload []byte) error {
	if key == "" {
		return errs.NewValueIsRequiredError("key")
	}

	dto := SnapshotDTO{Key: key, Payload: payload, UpdatedAt: r.now().UTC()}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(&dto).Error
}

// Load returns the payload for key.
func (r *GormSnapshotRepository) Load(ctx context.Context, key string) ([]byte, error) {
	var dto SnapshotDTO
	if err := r.db.WithContext(ctx).First(&dto, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundErrorWithCause("snapshot", key, err)
		}
		return nil, err
	}
	return dto.Payload, nil
}
