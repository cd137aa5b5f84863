package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerWritesStructuredEntry(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("rms", &buf)

	log.Info("customer_created", "Customer created", "req-1", map[string]interface{}{
		"customer_id": "C001",
	})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "Customer created", entry["msg"])
	assert.Equal(t, "rms", entry["service"])
	assert.Equal(t, "customer_created", entry["action"])
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, "C001", entry["customer_id"])
	assert.NotContains(t, entry, "error")
}

func TestLoggerErrorGroup(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("rms", &buf)

	log.Error("order_create_failed", "Failed to create order", "req-2", errors.New("boom"), nil)

	var entry struct {
		Level string `json:"level"`
		Error struct {
			Msg   string `json:"msg"`
			Stack string `json:"stack"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ERROR", entry.Level)
	assert.Equal(t, "boom", entry.Error.Msg)
	assert.NotEmpty(t, entry.Error.Stack)
}

func TestGenerateRequestID(t *testing.T) {
	a, b := GenerateRequestID(), GenerateRequestID()
	assert.NotEqual(t, a, b)
	_, err := uuid.Parse(a)
	assert.NoError(t, err)
}

func TestRequestIDFromContext(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-42")
	assert.Equal(t, "req-42", RequestIDFrom(ctx))

	fresh := RequestIDFrom(context.Background())
	_, err := uuid.Parse(fresh)
	assert.NoError(t, err)
}
