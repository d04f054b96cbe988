package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryUnmarshalAcceptsLegacyTimestampKey(t *testing.T) {
	var legacy Query
	require.NoError(t, json.Unmarshal([]byte(`{"student_id": "S1", "message": "hi", "timestamp": "2024-03-01T10:00:00Z"}`), &legacy))
	assert.Equal(t, "2024-03-01T10:00:00Z", legacy.Date)

	var canonical Query
	require.NoError(t, json.Unmarshal([]byte(`{"student_id": "S1", "date": "2024-03-02T10:00:00Z"}`), &canonical))
	assert.Equal(t, "2024-03-02T10:00:00Z", canonical.Date)

	// Canonical key wins when both are present
	var both Query
	require.NoError(t, json.Unmarshal([]byte(`{"date": "2024-03-02T10:00:00Z", "timestamp": "2024-03-01T10:00:00Z"}`), &both))
	assert.Equal(t, "2024-03-02T10:00:00Z", both.Date)
}

func TestQueryMarshalWritesDateKeyOnly(t *testing.T) {
	data, err := json.Marshal(Query{StudentID: "S1", Date: "2024-03-01T10:00:00Z"})
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Contains(t, raw, "date")
	assert.NotContains(t, raw, "timestamp")
}
