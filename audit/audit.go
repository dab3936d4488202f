package audit

import (
	"context"

	"scholarship/engine"
	"scholarship/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type LogWriter interface {
	SaveSystemLog(log *repository.SystemLog) error
}

// SystemLogAuditor mirrors each audit entry to the structured log and
// persists it as a SystemLog row.
type SystemLogAuditor struct {
	writer LogWriter
	logger zerolog.Logger
}

var _ engine.Auditor = (*SystemLogAuditor)(nil)

func NewSystemLogAuditor(writer LogWriter, logger zerolog.Logger) *SystemLogAuditor {
	return &SystemLogAuditor{writer: writer, logger: logger}
}

func (a *SystemLogAuditor) Record(ctx context.Context, entry engine.AuditEntry) error {
	correlationID := uuid.New()
	level := repository.LogLevelInfo
	event := a.logger.Info()
	if entry.Warning {
		level = repository.LogLevelWarning
		event = a.logger.Warn()
	}
	event.Str("action", entry.Action).
		Int("actor_id", entry.ActorID).
		Int("application_id", entry.ApplicationID).
		Str("correlation_id", correlationID.String()).
		Msg(entry.Message)

	if err := ctx.Err(); err != nil {
		return err
	}
	var userID *int
	if entry.ActorID != 0 {
		actorID := entry.ActorID
		userID = &actorID
	}
	applicationID := entry.ApplicationID
	return a.writer.SaveSystemLog(&repository.SystemLog{
		Level:         level,
		Action:        entry.Action,
		Message:       entry.Message,
		UserID:        userID,
		ApplicationID: &applicationID,
		CorrelationID: correlationID,
	})
}
