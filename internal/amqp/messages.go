package amqp

import (
	"encoding/json"
	"fmt"
	"time"
)

// ThemeChangedType is the AMQP message type of ThemeChangedMessage.
const ThemeChangedType = "theme.changed"

// ThemeChangedMessage announces a new theme preference.
type ThemeChangedMessage struct {
	Event     string    `json:"event"`
	Previous  string    `json:"previous"`
	Current   string    `json:"current"`
	Timestamp time.Time `json:"timestamp"`
}

func NewThemeChangedMessage(previous, current string) *ThemeChangedMessage {
	return &ThemeChangedMessage{
		Event:     ThemeChangedType,
		Previous:  previous,
		Current:   current,
		Timestamp: time.Now().UTC(),
	}
}

func (m *ThemeChangedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func ThemeChangedMessageFromJSON(data []byte) (*ThemeChangedMessage, error) {
	var msg ThemeChangedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	if msg.Event != ThemeChangedType {
		return nil, fmt.Errorf("unexpected event %q", msg.Event)
	}
	return &msg, nil
}
