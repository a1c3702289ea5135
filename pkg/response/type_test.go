package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"inventory-tracker/pkg/response"
)

func TestDateMarshalJSON(t *testing.T) {
	d := response.Date(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))

	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("unexpected error marshaling Date: %v", err)
	}
	if string(b) != `"2024-05-01"` {
		t.Errorf("got %s", b)
	}
}

func TestDateUnmarshalJSON(t *testing.T) {
	var d response.Date
	if err := json.Unmarshal([]byte(`"2024-05-01"`), &d); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	if !time.Time(d).Equal(want) {
		t.Errorf("got %v, want %v", time.Time(d), want)
	}

	if err := json.Unmarshal([]byte(`"01/05/2024"`), &d); err == nil {
		t.Error("expected error for wrong format")
	}
	if err := json.Unmarshal([]byte(`20240501`), &d); err == nil {
		t.Error("expected error for non-string")
	}
}

func TestDateTimeMarshalJSON(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	dt := response.DateTime(time.Date(2024, 5, 1, 22, 30, 0, 0, loc))

	b, err := json.Marshal(dt)
	if err != nil {
		t.Fatalf("unexpected error marshaling DateTime: %v", err)
	}
	if string(b) != `"2024-05-01T15:30:00Z"` {
		t.Errorf("got %s", b)
	}
}
