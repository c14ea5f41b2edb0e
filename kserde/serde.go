// Package kserde decodes and encodes the line-oriented records sorted by ksort.
package kserde

import (
	"bufio"
	"fmt"
	"io"
)

type Serde[T any] struct {
	Serializer   Serializer[T]
	Deserializer Deserializer[T]
}

type Serializer[T any] func(T) ([]byte, error)

type Deserializer[T any] func([]byte) (T, error)

// ReadLines deserializes every non-empty line of r.
func ReadLines[T any](r io.Reader, d Deserializer[T]) ([]T, error) {
	var out []T
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		if len(scanner.Bytes()) == 0 {
			continue
		}
		v, err := d(scanner.Bytes())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// WriteLines serializes values to w, one per line.
func WriteLines[T any](w io.Writer, values []T, s Serializer[T]) error {
	bw := bufio.NewWriter(w)
	for _, v := range values {
		b, err := s(v)
		if err != nil {
			return err
		}
		if _, err := bw.Write(b); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
