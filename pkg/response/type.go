package response

import (
	"encoding/json"
	"time"
)

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// Date renders as DateFormat in UTC.
type Date time.Time

func (d Date) MarshalJSON() ([]byte, error) {
	return marshalTime(time.Time(d), DateFormat)
}

// DateTime renders as DateTimeFormat in UTC. The zero time renders as null.
type DateTime time.Time

func (d DateTime) MarshalJSON() ([]byte, error) {
	return marshalTime(time.Time(d), DateTimeFormat)
}

func marshalTime(t time.Time, layout string) ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.UTC().Format(layout))
}
