// Package snapshotrepo stores store snapshots in Postgres through GORM.
package snapshotrepo

import "time"

// SnapshotDTO is one row of the snapshots table: the latest payload for a key.
type SnapshotDTO struct {
	Key       string `gorm:"primaryKey;size:64"`
	Payload   []byte `gorm:"type:bytea;not null"`
	UpdatedAt time.Time
}

// TableName overrides GORM's default naming convention.
func (SnapshotDTO) TableName() string {
	return "snapshots"
}
