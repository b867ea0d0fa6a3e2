package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"adizon-admin/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestamp_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want time.Time
	}{
		{
			name: "naive iso treated as utc",
			in:   `"2024-03-01T10:20:30.123456"`,
			want: time.Date(2024, 3, 1, 10, 20, 30, 123456000, time.UTC),
		},
		{
			name: "space separated",
			in:   `"2024-03-01 10:20:30"`,
			want: time.Date(2024, 3, 1, 10, 20, 30, 0, time.UTC),
		},
		{
			name: "with offset",
			in:   `"2024-03-01T10:20:30+03:00"`,
			want: time.Date(2024, 3, 1, 7, 20, 30, 0, time.UTC),
		},
		{
			name: "null",
			in:   `null`,
		},
		{
			name: "empty string",
			in:   `""`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts domain.Timestamp
			require.NoError(t, json.Unmarshal([]byte(tt.in), &ts))
			assert.True(t, tt.want.Equal(ts.Time), "got %s", ts.Time)
		})
	}
}

func TestTimestamp_UnmarshalJSON_Invalid(t *testing.T) {
	var ts domain.Timestamp

	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &ts))
	assert.Error(t, json.Unmarshal([]byte(`12345`), &ts))
}

func TestTimestamp_Display(t *testing.T) {
	assert.Equal(t, "—", domain.Timestamp{}.Display())

	ts := domain.Timestamp{Time: time.Date(2024, 3, 1, 10, 20, 30, 0, time.UTC)}
	assert.Equal(t, "2024-03-01 10:20", ts.Display())
}

func TestTimestamp_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(struct {
		At domain.Timestamp `json:"at"`
	}{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"at":null}`, string(data))
}
