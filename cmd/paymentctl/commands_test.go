package main

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/payment-engine/internal/domain/entity"
)

func TestWriteNotifications(t *testing.T) {
	id := uuid.MustParse("6f1c1f5e-7a0f-4e7e-9d0b-3c2d6c1b9a11")
	notifications := []*entity.Notification{{
		ID:              id,
		QueueName:       "payment-retry",
		State:           entity.NotificationFailed,
		EffectiveDate:   time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		AccountRecordID: 42,
		ErrorCount:      5,
		LastError:       "plugin timeout",
		Event:           []byte(`{"attemptId":"a"}`),
	}}

	t.Run("table", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeNotifications(&buf, "table", notifications))
		assert.Contains(t, buf.String(), "LAST ERROR")
		assert.Contains(t, buf.String(), id.String())
		assert.Contains(t, buf.String(), "2024-03-01T12:00:00Z")
		assert.Contains(t, buf.String(), "plugin timeout")
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeNotifications(&buf, "json", notifications))

		var decoded []map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		require.Len(t, decoded, 1)
		assert.Equal(t, "FAILED", decoded[0]["state"])
		assert.Equal(t, map[string]any{"attemptId": "a"}, decoded[0]["event"])
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeNotifications(&buf, "yaml", notifications))
		assert.Contains(t, buf.String(), "queueName: payment-retry")
		assert.Contains(t, buf.String(), "errorCount: 5")
	})

	t.Run("unknown format", func(t *testing.T) {
		assert.Error(t, writeNotifications(&bytes.Buffer{}, "xml", notifications))
	})
}
