package events

import "time"

// Base is a minimal Event implementation used for broker-bound notifications.
type Base struct {
	Name     string
	DateTime time.Time
	Payload  interface{}
}

func NewBase(name string) *Base {
	return &Base{Name: name, DateTime: time.Now()}
}

func (e *Base) GetName() string               { return e.Name }
func (e *Base) GetDateTime() time.Time        { return e.DateTime }
func (e *Base) GetPayload() interface{}       { return e.Payload }
func (e *Base) SetPayload(payload interface{}) { e.Payload = payload }
