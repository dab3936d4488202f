package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"scholarship/engine"
	"scholarship/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryWriter struct {
	logs []*repository.SystemLog
	err  error
}

func (w *memoryWriter) SaveSystemLog(log *repository.SystemLog) error {
	if w.err != nil {
		return w.err
	}
	w.logs = append(w.logs, log)
	return nil
}

func TestRecordPersistsEntry(t *testing.T) {
	writer := &memoryWriter{}
	var buf bytes.Buffer
	auditor := NewSystemLogAuditor(writer, zerolog.New(&buf))

	err := auditor.Record(context.Background(), engine.AuditEntry{
		Action:        "assign_reviewers",
		Message:       "assigned reviewers 7, 8",
		ActorID:       1,
		ApplicationID: 42,
	})
	require.NoError(t, err)
	require.Len(t, writer.logs, 1)

	saved := writer.logs[0]
	assert.Equal(t, repository.LogLevelInfo, saved.Level)
	assert.Equal(t, "assign_reviewers", saved.Action)
	assert.Equal(t, 1, *saved.UserID)
	assert.Equal(t, 42, *saved.ApplicationID)
	assert.NotEqual(t, uuid.Nil, saved.CorrelationID)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, saved.CorrelationID.String(), line["correlation_id"])
	assert.Equal(t, "assigned reviewers 7, 8", line["message"])
}

func TestRecordWarning(t *testing.T) {
	writer := &memoryWriter{}
	var buf bytes.Buffer
	auditor := NewSystemLogAuditor(writer, zerolog.New(&buf))

	require.NoError(t, auditor.Record(context.Background(), engine.AuditEntry{Action: "decide", ApplicationID: 3, ActorID: 5, Warning: true}))
	assert.Equal(t, repository.LogLevelWarning, writer.logs[0].Level)
	assert.Contains(t, buf.String(), `"level":"warn"`)
}

func TestRecordReturnsWriterError(t *testing.T) {
	writer := &memoryWriter{err: errors.New("db down")}
	auditor := NewSystemLogAuditor(writer, zerolog.Nop())

	err := auditor.Record(context.Background(), engine.AuditEntry{Action: "decide", ApplicationID: 3})
	assert.EqualError(t, err, "db down")
}
