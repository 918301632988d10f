package models

import (
	"time"

	"gorm.io/datatypes"
)

// StoreSnapshot holds the serialized store state saved under a namespace key.
type StoreSnapshot struct {
	Namespace string         `gorm:"primaryKey;size:100" json:"namespace"`
	State     datatypes.JSON `gorm:"not null" json:"state"`
	UpdatedAt time.Time      `json:"updated_at"`
}
