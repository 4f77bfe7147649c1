package persist

import (
	"encoding/json"
	"log"
)

// ErrorHandler observes swallowed storage errors. op is "read", "parse",
// "validate", "encode" or "write".
type ErrorHandler func(op, key string, err error)

// LogErrors is the default ErrorHandler.
func LogErrors(op, key string, err error) {
	log.Printf("persist: failed to %s %q: %v", op, key, err)
}

// Value is a single JSON-serializable value bound to a key.
type Value[T any] struct {
	kv       KV
	key      string
	value    T
	validate func(T) error
	onError  ErrorHandler
}

// Option configures a Value.
type Option[T any] func(*Value[T])

// WithValidator rejects stored values for which fn returns an error; the
// default is used instead.
func WithValidator[T any](fn func(T) error) Option[T] {
	return func(v *Value[T]) { v.validate = fn }
}

// WithErrorHandler replaces LogErrors.
func WithErrorHandler[T any](fn ErrorHandler) Option[T] {
	return func(v *Value[T]) { v.onError = fn }
}

// Load reads key from kv once. An absent key, a storage error, malformed JSON,
// JSON null, or a value rejected by the validator all yield def.
func Load[T any](kv KV, key string, def T, opts ...Option[T]) *Value[T] {
	v := &Value[T]{kv: kv, key: key, onError: LogErrors}
	for _, opt := range opts {
		opt(v)
	}
	v.value = v.read(def)
	return v
}

func (v *Value[T]) read(def T) T {
	if v.kv == nil {
		return def
	}
	raw, ok, err := v.kv.Get(v.key)
	if err != nil {
		v.fail("read", err)
		return def
	}
	if !ok {
		return def
	}
	var decoded *T
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		v.fail("parse", err)
		return def
	}
	if decoded == nil {
		return def
	}
	if v.validate != nil {
		if err := v.validate(*decoded); err != nil {
			v.fail("validate", err)
			return def
		}
	}
	return *decoded
}

// Key returns the storage key.
func (v *Value[T]) Key() string {
	return v.key
}

// Get returns the in-memory value.
func (v *Value[T]) Get() T {
	return v.value
}

// Set replaces the in-memory value and writes it through. It reports whether
// the write succeeded; the in-memory value changes either way.
func (v *Value[T]) Set(x T) bool {
	v.value = x
	if v.kv == nil {
		return false
	}
	b, err := json.Marshal(x)
	if err != nil {
		v.fail("encode", err)
		return false
	}
	if err := v.kv.Set(v.key, string(b)); err != nil {
		v.fail("write", err)
		return false
	}
	return true
}

// Update sets the value to fn(current).
func (v *Value[T]) Update(fn func(T) T) bool {
	return v.Set(fn(v.value))
}

func (v *Value[T]) fail(op string, err error) {
	if v.onError != nil {
		v.onError(op, v.key, err)
	}
}
