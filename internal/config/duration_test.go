package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLifetime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "days", input: "7d", want: 7 * 24 * time.Hour},
		{name: "single day", input: "1d", want: 24 * time.Hour},
		{name: "hours", input: "24h", want: 24 * time.Hour},
		{name: "minutes", input: "30m", want: 30 * time.Minute},
		{name: "padded", input: " 2d ", want: 48 * time.Hour},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "sevendays", wantErr: true},
		{name: "bad day count", input: "xd", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLifetime(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDuration_UnmarshalText(t *testing.T) {
	var d Duration
	require.NoError(t, d.UnmarshalText([]byte("7d")))
	assert.Equal(t, 7*24*time.Hour, d.Std())

	assert.Error(t, d.UnmarshalText([]byte("not a duration")))
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	var fromString Duration
	require.NoError(t, json.Unmarshal([]byte(`"36h"`), &fromString))
	assert.Equal(t, 36*time.Hour, fromString.Std())

	var fromNumber Duration
	require.NoError(t, json.Unmarshal([]byte(`3600000000000`), &fromNumber))
	assert.Equal(t, time.Hour, fromNumber.Std())

	var invalid Duration
	assert.Error(t, json.Unmarshal([]byte(`"oops"`), &invalid))
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration(90 * time.Minute))
	require.NoError(t, err)
	assert.Equal(t, `"1h30m0s"`, string(b))
}
