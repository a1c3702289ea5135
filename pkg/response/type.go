package response

import (
	"encoding/json"
	"fmt"
	"time"
)

// Resp is the body written for non-validation errors.
type Resp struct {
	Detail string `json:"detail"`
	Code   string `json:"code,omitempty"`
}

// Date is a calendar date that marshals as DateFormat.
type Date time.Time

// MarshalJSON implements json.Marshaler for Date.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Format(DateFormat))
}

// UnmarshalJSON implements json.Unmarshaler for Date. The result is
// midnight UTC of the given day.
func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date must be a string in %s format", DateFormat)
	}
	t, err := time.ParseInLocation(DateFormat, s, time.UTC)
	if err != nil {
		return fmt.Errorf("date has wrong format, use %s", DateFormat)
	}
	*d = Date(t)
	return nil
}

// DateTime is a timestamp that marshals as DateTimeFormat in UTC.
type DateTime time.Time

// MarshalJSON implements json.Marshaler for DateTime.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).UTC().Format(DateTimeFormat))
}
