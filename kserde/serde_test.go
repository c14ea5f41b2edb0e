package kserde

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestReadLines(t *testing.T) {
	t.Run("strings skip empty lines", func(t *testing.T) {
		got, err := ReadLines(strings.NewReader("b\n\na\nc"), String.Deserializer)
		assert.NoError(t, err)
		assert.Equal(t, []string{"b", "a", "c"}, got)
	})

	t.Run("crlf", func(t *testing.T) {
		got, err := ReadLines(strings.NewReader("b\r\na\r\n"), String.Deserializer)
		assert.NoError(t, err)
		assert.Equal(t, []string{"b", "a"}, got)
	})

	t.Run("json records", func(t *testing.T) {
		input := `{"name":"a","age":3}
{"name":"b","age":null,"tags":["x"]}`
		got, err := ReadLines(strings.NewReader(input), JSON[Record]().Deserializer)
		assert.NoError(t, err)
		assert.Equal(t, 2, len(got))
		assert.Equal(t, any(3.0), got[0]["age"])
		assert.Equal(t, nil, got[1]["age"])
		assert.Equal(t, any([]any{"x"}), got[1]["tags"])
	})

	t.Run("error names the line", func(t *testing.T) {
		_, err := ReadLines(strings.NewReader("{}\n\n{broken"), JSON[Record]().Deserializer)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "line 3")
	})

	t.Run("trailing data", func(t *testing.T) {
		_, err := ReadLines(strings.NewReader(`{"a":1} {"b":2}`), JSON[Record]().Deserializer)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "line 1: unexpected data after JSON value")
	})
}

func TestWriteLines(t *testing.T) {
	t.Run("strings", func(t *testing.T) {
		var buf bytes.Buffer
		assert.NoError(t, WriteLines(&buf, []string{"a", "b"}, String.Serializer))
		assert.Equal(t, "a\nb\n", buf.String())
	})

	t.Run("json records", func(t *testing.T) {
		var buf bytes.Buffer
		assert.NoError(t, WriteLines(&buf, []Record{{"a": 1.0}}, JSON[Record]().Serializer))
		assert.Equal(t, "{\"a\":1}\n", buf.String())
	})

	t.Run("json keeps html characters", func(t *testing.T) {
		var buf bytes.Buffer
		assert.NoError(t, WriteLines(&buf, []Record{{"a": "<b>&"}}, JSON[Record]().Serializer))
		assert.Equal(t, "{\"a\":\"<b>&\"}\n", buf.String())
	})

	t.Run("serializer error", func(t *testing.T) {
		boom := errors.New("boom")
		err := WriteLines(&bytes.Buffer{}, []string{"a"}, func(string) ([]byte, error) { return nil, boom })
		assert.True(t, errors.Is(err, boom))
	})
}
