package kserde

import "bytes"

// StringDeserializer decodes a text line. A trailing carriage return left
// over from CRLF input is dropped so it does not take part in comparisons.
var StringDeserializer = func(data []byte) (string, error) {
	return string(bytes.TrimSuffix(data, []byte{'\r'})), nil
}

var StringSerializer = func(data string) ([]byte, error) {
	return []byte(data), nil
}

// String reads and writes plain text lines.
var String = Serde[string]{
	Serializer:   StringSerializer,
	Deserializer: StringDeserializer,
}
