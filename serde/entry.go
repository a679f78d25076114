package serde

import (
	"errors"
	"fmt"

	"github.com/hugolhafner/go-logline"
	"google.golang.org/protobuf/types/known/structpb"
)

var ErrInvalidEntry = errors.New("serde: invalid log entry")

var (
	_ Serde[logline.Entry] = textEntrySerde{}
	_ Serde[logline.Entry] = jsonEntrySerde{}
	_ Serde[logline.Entry] = protobufEntrySerde{}
)

// Text encodes an entry exactly as a Line flushes it: the severity marker
// byte followed by the message.
func Text() Serde[logline.Entry] {
	return textEntrySerde{}
}

type textEntrySerde struct{}

func (s textEntrySerde) Serialise(_ string, value logline.Entry) ([]byte, error) {
	return []byte(value.String()), nil
}

func (s textEntrySerde) Deserialise(_ string, data []byte) (logline.Entry, error) {
	return logline.Decode(string(data)), nil
}

// EntryJSON encodes an entry as {"severity":"WARNING","message":"..."}.
func EntryJSON() Serde[logline.Entry] {
	return jsonEntrySerde{inner: JSON[jsonEntry]()}
}

type jsonEntry struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

type jsonEntrySerde struct {
	inner Serde[jsonEntry]
}

func (s jsonEntrySerde) Serialise(topic string, value logline.Entry) ([]byte, error) {
	return s.inner.Serialise(
		topic, jsonEntry{
			Severity: value.Severity.String(),
			Message:  value.Message,
		},
	)
}

func (s jsonEntrySerde) Deserialise(topic string, data []byte) (logline.Entry, error) {
	je, err := s.inner.Deserialise(topic, data)
	if err != nil {
		return logline.Entry{}, err
	}

	sev, err := logline.ParseSeverity(je.Severity)
	if err != nil {
		return logline.Entry{}, fmt.Errorf("%w: %w", ErrInvalidEntry, err)
	}

	return logline.Entry{Severity: sev, Message: je.Message}, nil
}

// EntryProtobuf encodes an entry as a google.protobuf.Struct with a string
// "severity" field and a string "message" field.
func EntryProtobuf() Serde[logline.Entry] {
	return protobufEntrySerde{inner: Protobuf[*structpb.Struct]()}
}

type protobufEntrySerde struct {
	inner Serde[*structpb.Struct]
}

func (s protobufEntrySerde) Serialise(topic string, value logline.Entry) ([]byte, error) {
	msg := &structpb.Struct{
		Fields: map[string]*structpb.Value{
			"severity": structpb.NewStringValue(value.Severity.String()),
			"message":  structpb.NewStringValue(value.Message),
		},
	}
	return s.inner.Serialise(topic, msg)
}

func (s protobufEntrySerde) Deserialise(topic string, data []byte) (logline.Entry, error) {
	msg, err := s.inner.Deserialise(topic, data)
	if err != nil {
		return logline.Entry{}, err
	}

	sevField, ok := msg.GetFields()["severity"]
	if !ok {
		return logline.Entry{}, fmt.Errorf("%w: missing severity", ErrInvalidEntry)
	}

	sev, err := logline.ParseSeverity(sevField.GetStringValue())
	if err != nil {
		return logline.Entry{}, fmt.Errorf("%w: %w", ErrInvalidEntry, err)
	}

	return logline.Entry{
		Severity: sev,
		Message:  msg.GetFields()["message"].GetStringValue(),
	}, nil
}
