package model

import "time"

const (
	ServerStatusOnline  = "online"
	ServerStatusOffline = "offline"
	ServerStatusUnknown = "unknown"
)

type Server struct {
	ID          uint       `gorm:"primaryKey"`
	Name        string     `gorm:"size:255;not null"`
	URL         string     `gorm:"uniqueIndex;not null"`
	Type        ServerType `gorm:"size:32;not null"`
	Healthcheck string     `gorm:"size:500"`
	Status      string     `gorm:"size:16;not null"`
	Version     string     `gorm:"size:255"`
	LastChecked *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
