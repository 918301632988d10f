package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ahmetcoskunkizilkaya/helpdesk-backend/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSnapshotter stores snapshots in the store_snapshots table. It runs on
// both the postgres and the sqlite driver.
type GormSnapshotter struct {
	db *gorm.DB
}

func NewGormSnapshotter(db *gorm.DB) *GormSnapshotter {
	return &GormSnapshotter{db: db}
}

func (g *GormSnapshotter) Load(ctx context.Context, namespace string) ([]byte, error) {
	var snap models.StoreSnapshot
	err := g.db.WithContext(ctx).Where("namespace = ?", namespace).First(&snap).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}
	return []byte(snap.State), nil
}

func (g *GormSnapshotter) Save(ctx context.Context, namespace string, data []byte) error {
	snap := models.StoreSnapshot{
		Namespace: namespace,
		State:     datatypes.JSON(data),
		UpdatedAt: time.Now().UTC(),
	}
	err := g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "namespace"}},
		DoUpdates: clause.AssignmentColumns([]string{"state", "updated_at"}),
	}).Create(&snap).Error
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}
