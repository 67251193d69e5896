package webhook

import (
	"encoding/json"
	"fmt"
)

// EventType is the closed set of gateway event types this service acts on.
// Everything else maps to EventIgnored: the gateway adds new types over time
// and unrecognized ones must be acknowledged, not rejected.
type EventType int

const (
	EventIgnored EventType = iota
	EventPaymentSucceeded
	EventPaymentFailed
)

const (
	typePaymentSucceeded = "payment_intent.succeeded"
	typePaymentFailed    = "payment_intent.payment_failed"
)

type Event struct {
	Type    EventType
	RawType string
	// IntentID is the remote payment-intent id embedded in the event payload.
	IntentID string
}

func ParseEvent(payload []byte) (*Event, error) {
	var raw struct {
		Type string `json:"type"`
		Data struct {
			Object struct {
				ID string `json:"id"`
			} `json:"object"`
		} `json:"data"`
	}
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal webhook event: %w", err)
	}

	event := &Event{RawType: raw.Type, IntentID: raw.Data.Object.ID}
	switch raw.Type {
	case typePaymentSucceeded:
		event.Type = EventPaymentSucceeded
	case typePaymentFailed:
		event.Type = EventPaymentFailed
	default:
		event.Type = EventIgnored
	}

	return event, nil
}
