package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// LineStatus represents the delivery compliance status of a reconciliation line
type LineStatus int

const (
	LineStatusOnTime      LineStatus = 0
	LineStatusLate        LineStatus = 1
	LineStatusUnscheduled LineStatus = 2
)

func (s LineStatus) String() string {
	return [...]string{"OnTime", "Late", "Unscheduled"}[s]
}

func (s LineStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *LineStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = LineStatus(i)
		return nil
	}
	switch str {
	case "OnTime":
		*s = LineStatusOnTime
	case "Late":
		*s = LineStatusLate
	case "Unscheduled":
		*s = LineStatusUnscheduled
	}
	return nil
}

func (s LineStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *LineStatus) Scan(value interface{}) error {
	if value == nil {
		*s = LineStatusOnTime
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = LineStatus(v)
	case int:
		*s = LineStatus(v)
	}
	return nil
}
