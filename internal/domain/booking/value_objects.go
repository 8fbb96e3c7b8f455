package booking

import (
	"encoding/json"
	"strings"
	"unicode/utf8"

	"slotbook/internal/pkg/errs"
)

const (
	MaxSubjectLength  = 200
	MaxMetadataLength = 4096
)

var (
	ErrSubjectTooLong   = errs.New("subject is too long (max 200 characters)")
	ErrMetadataTooLarge = errs.New("metadata is too large (max 4096 bytes)")
	ErrInvalidMetadata  = errs.New("metadata must be a JSON object")
)

type Subject struct {
	value string
}

func NewSubject(value string) (Subject, error) {
	value = strings.TrimSpace(value)
	if utf8.RuneCountInString(value) > MaxSubjectLength {
		return Subject{}, ErrSubjectTooLong
	}
	return Subject{value: value}, nil
}

func (s Subject) String() string { return s.value }
func (s Subject) IsEmpty() bool  { return s.value == "" }

// Metadata is an opaque JSON object carried alongside every booking of a session.
type Metadata struct {
	raw json.RawMessage
}

func NewMetadata(fields map[string]any) (Metadata, error) {
	if len(fields) == 0 {
		return Metadata{raw: json.RawMessage("{}")}, nil
	}
	raw, err := json.Marshal(fields)
	if err != nil {
		return Metadata{}, errs.Mark(err, ErrInvalidMetadata)
	}
	if len(raw) > MaxMetadataLength {
		return Metadata{}, ErrMetadataTooLarge
	}
	return Metadata{raw: raw}, nil
}

func MetadataFromJSON(raw []byte) (Metadata, error) {
	if len(raw) == 0 {
		return Metadata{raw: json.RawMessage("{}")}, nil
	}
	var probe map[string]any
	if err := json.Unmarshal(raw, &probe); err != nil {
		return Metadata{}, errs.Mark(err, ErrInvalidMetadata)
	}
	return Metadata{raw: append(json.RawMessage(nil), raw...)}, nil
}

func (m Metadata) JSON() json.RawMessage {
	if len(m.raw) == 0 {
		return json.RawMessage("{}")
	}
	return m.raw
}
