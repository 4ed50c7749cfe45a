package mailroom

import (
	"fmt"
	"time"

	"github.com/go-openapi/strfmt"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

var envelopeJSON = []byte(`{"type":"envelope"}`)

// Envelope is a pending queue entry. The topic doubles as the payload: the
// routing key and the message are the same string. Seq is assigned by the
// provider in enqueue order and is strictly increasing for its lifetime.
type Envelope struct {
	ID         uuid.UUID       `json:"id"`
	Topic      string          `json:"topic"`
	Seq        uint64          `json:"seq"`
	EnqueuedAt strfmt.DateTime `json:"enqueued_at,omitempty"`
}

func newEnvelope(topic string, seq uint64) Envelope {
	return Envelope{
		ID:         uuid.Must(uuid.NewV7()),
		Topic:      topic,
		Seq:        seq,
		EnqueuedAt: strfmt.DateTime(time.Now()),
	}
}

func (e Envelope) String() string {
	b, err := json.Marshal(e)
	if err != nil {
		return fmt.Sprintf("envelope(%s %q)", e.ID, e.Topic)
	}
	return string(b)
}

// MarshalJSON implements custom JSON marshaling for Envelope
func (e Envelope) MarshalJSON() ([]byte, error) {
	result := envelopeJSON

	var err error
	result, err = sjson.SetBytes(result, "id", e.ID.String())
	if err != nil {
		return nil, err
	}

	result, err = sjson.SetBytes(result, "topic", e.Topic)
	if err != nil {
		return nil, err
	}

	result, err = sjson.SetBytes(result, "seq", e.Seq)
	if err != nil {
		return nil, err
	}

	if !e.EnqueuedAt.IsZero() {
		result, err = sjson.SetBytes(result, "enqueued_at", e.EnqueuedAt.String())
		if err != nil {
			return nil, err
		}
	}

	return result, nil
}

// UnmarshalJSON implements custom JSON unmarshaling for Envelope
func (e *Envelope) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("invalid json: %s", data)
	}

	msgType := gjson.GetBytes(data, "type")
	if !msgType.Exists() || msgType.String() != "envelope" {
		return fmt.Errorf("missing or invalid type, expected 'envelope'")
	}

	id := gjson.GetBytes(data, "id")
	if !id.Exists() {
		return fmt.Errorf("missing required field 'id'")
	}
	if err := e.ID.UnmarshalText([]byte(id.String())); err != nil {
		return fmt.Errorf("invalid id: %w", err)
	}

	topic := gjson.GetBytes(data, "topic")
	if !topic.Exists() {
		return fmt.Errorf("missing required field 'topic'")
	}
	e.Topic = topic.String()

	if seq := gjson.GetBytes(data, "seq"); seq.Exists() {
		e.Seq = seq.Uint()
	}

	if enqueuedAt := gjson.GetBytes(data, "enqueued_at"); enqueuedAt.Exists() {
		if err := e.EnqueuedAt.UnmarshalText([]byte(enqueuedAt.String())); err != nil {
			return fmt.Errorf("invalid enqueued_at: %w", err)
		}
	}

	return nil
}
