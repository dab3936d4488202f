package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LogLevel string

const (
	LogLevelInfo    LogLevel = "info"
	LogLevelWarning LogLevel = "warning"
)

type SystemLog struct {
	ID            int       `gorm:"primaryKey;autoIncrement"`
	Level         LogLevel  `gorm:"type:varchar(10);not null"`
	Action        string    `gorm:"type:varchar(50);not null;index"`
	Message       string    `gorm:"type:text;not null"`
	UserID        *int      `gorm:"null;index"`
	ApplicationID *int      `gorm:"null;index"`
	CorrelationID uuid.UUID `gorm:"type:varchar(36);not null"`
	CreatedAt     time.Time `gorm:"not null;index"`
}

type SystemLogRepository struct {
	DB *gorm.DB
}

func NewSystemLogRepository(db *gorm.DB) *SystemLogRepository {
	return &SystemLogRepository{DB: db}
}

func (r *SystemLogRepository) SaveSystemLog(log *SystemLog) error {
	if log.CorrelationID == uuid.Nil {
		log.CorrelationID = uuid.New()
	}
	return r.DB.Create(log).Error
}

func (r *SystemLogRepository) GetLogsForApplication(applicationId int) ([]*SystemLog, error) {
	logs := make([]*SystemLog, 0)
	result := r.DB.Where("application_id = ?", applicationId).Order("created_at, id").Find(&logs)
	if result.Error != nil {
		return nil, result.Error
	}
	return logs, nil
}
