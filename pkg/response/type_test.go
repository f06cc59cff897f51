package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"quicktask/pkg/response"
)

func TestTimestampMarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"utc", time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC), `"2024-05-01T15:30:00.000Z"`},
		{"converted to utc", time.Date(2024, 5, 1, 22, 30, 0, 250e6, time.FixedZone("UTC+7", 7*3600)), `"2024-05-01T15:30:00.250Z"`},
		{"zero", time.Time{}, `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(response.Timestamp(tt.in))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(b) != tt.want {
				t.Errorf("got %s, want %s", b, tt.want)
			}
		})
	}
}
