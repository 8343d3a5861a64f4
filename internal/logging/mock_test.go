package logging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMockLoggerRecordsEntries(t *testing.T) {
	mock := NewMockLogger()

	mock.Debug("request sent", Field{Key: FieldOperation, Value: "getCustomerProfile"})
	mock.Info("response received")
	mock.Warn("slow response", Field{Key: FieldDuration, Value: 1200})
	mock.Error("decode failed")

	assert.Len(t, mock.Entries, 4)
	assert.True(t, mock.HasEntry("DEBUG", "request sent"))
	assert.True(t, mock.HasEntry("INFO", "response received"))
	assert.True(t, mock.HasEntry("WARN", "slow response"))
	assert.True(t, mock.HasEntry("ERROR", "decode failed"))
	assert.False(t, mock.HasEntry("INFO", "never logged"))
}

func TestMockLoggerFieldValue(t *testing.T) {
	mock := NewMockLogger()
	mock.Info("ids fetched", Field{Key: FieldCount, Value: 3})

	assert.Equal(t, 3, mock.FieldValue(FieldCount))
	assert.Nil(t, mock.FieldValue("missing"))
}

func TestMockLoggerWithError(t *testing.T) {
	mock := NewMockLogger()
	err := errors.New("connection refused")

	mock.WithError(err).Error("post request")

	assert.Len(t, mock.Entries, 1)
	assert.Equal(t, err, mock.Entries[0].Error)
}

func TestMockLoggerReset(t *testing.T) {
	mock := NewMockLogger()
	mock.WithField("k", "v").Info("something")
	mock.Reset()

	assert.Empty(t, mock.Entries)
	mock.Info("fresh")
	assert.Empty(t, mock.Entries[0].Fields)
}
