package logging

import (
	"time"
)

// Field represents a key-value pair for structured logging
type Field struct {
	Key   string
	Value any
}

func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

func Uint64(key string, value uint64) Field {
	return Field{Key: key, Value: value}
}

func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value.String()}
}

func Error(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

// Component tags log lines with the emitting subsystem (ingest, api, feed).
func Component(name string) Field {
	return String("component", name)
}

// Item tags log lines with an item identifier.
func Item(name string) Field {
	return String("item", name)
}
