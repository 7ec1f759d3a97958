package enum

import "encoding/json"

// SessionState tracks the lifecycle of a reconciliation session
type SessionState int

const (
	SessionStateEmpty      SessionState = 0
	SessionStateLoaded     SessionState = 1
	SessionStateRegistered SessionState = 2
)

func (s SessionState) String() string {
	return [...]string{"Empty", "Loaded", "Registered"}[s]
}

func (s SessionState) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *SessionState) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = SessionState(i)
		return nil
	}
	switch str {
	case "Empty":
		*s = SessionStateEmpty
	case "Loaded":
		*s = SessionStateLoaded
	case "Registered":
		*s = SessionStateRegistered
	}
	return nil
}
