package audit

import (
	"encoding/json"

	"gorm.io/gorm"

	"github.com/barberclubbr/barberclub-api/internal/models"
)

type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	log := models.AuditLog{
		BarbershopID: ev.BarbershopID,
		UserID:       ev.UserID,
		ClientID:     ev.ClientID,
		Action:       ev.Action,
		Entity:       ev.Entity,
		EntityID:     ev.EntityID,
		TraceID:      ev.TraceID,
		Metadata:     metaJSON,
	}

	return l.db.Create(&log).Error
}
