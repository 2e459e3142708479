package storage

import "time"

// UnlockFlagModel represents the unlock_flags table
type UnlockFlagModel struct {
	Key        string    `gorm:"column:unlock_key;primaryKey"`
	UnlockedAt time.Time `gorm:"column:unlocked_at;not null"`
}

func (UnlockFlagModel) TableName() string {
	return "unlock_flags"
}
