package kserde

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
)

// Record is a decoded JSON object.
type Record = map[string]any

// JSONSerializer encodes a value as a single JSON line. HTML characters
// are written as is.
func JSONSerializer[T any]() Serializer[T] {
	return func(t T) ([]byte, error) {
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(t); err != nil {
			return nil, err
		}
		return bytes.TrimSuffix(buf.Bytes(), []byte{'\n'}), nil
	}
}

// JSONDeserializer decodes exactly one JSON value; anything after it is an error.
func JSONDeserializer[T any]() Deserializer[T] {
	return func(b []byte) (T, error) {
		var deserialized T
		dec := json.NewDecoder(bytes.NewReader(b))
		if err := dec.Decode(&deserialized); err != nil {
			return *new(T), err
		}
		if _, err := dec.Token(); !errors.Is(err, io.EOF) {
			return *new(T), errors.New("unexpected data after JSON value")
		}
		return deserialized, nil
	}
}

func JSON[T any]() Serde[T] {
	return Serde[T]{
		Serializer:   JSONSerializer[T](),
		Deserializer: JSONDeserializer[T](),
	}
}
