package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalUnmarshal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
		valid bool
	}{
		{"number", `8.5`, 8.5, true},
		{"integer", `8`, 8, true},
		{"numeric string", `"7.25"`, 7.25, true},
		{"padded numeric string", `" 6.5 "`, 6.5, true},
		{"non-numeric string", `"high"`, 0, false},
		{"null", `null`, 0, false},
		{"object", `{"value": 8}`, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Decimal
			require.NoError(t, json.Unmarshal([]byte(tt.input), &d))
			assert.Equal(t, tt.valid, d.Valid)
			if tt.valid {
				assert.Equal(t, tt.want, d.Value)
			}
		})
	}
}

func TestDecimalMarshal(t *testing.T) {
	data, err := json.Marshal(NewDecimal(8.5))
	require.NoError(t, err)
	assert.Equal(t, "8.5", string(data))

	data, err = json.Marshal(Decimal{})
	require.NoError(t, err)
	assert.Equal(t, "0", string(data))
}

func TestGenerateJobID(t *testing.T) {
	assert.Equal(t, "acme_corp_software_engineer", GenerateJobID("Acme Corp", "Software Engineer"))
	assert.Equal(t, "acme_corp_software_engineer", GenerateJobID("  ACME CORP ", "software engineer"))
}
