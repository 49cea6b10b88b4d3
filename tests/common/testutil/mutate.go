//go:build unit || e2e

// Package testutil turns request DTOs into mutable JSON maps for boundary tests.
package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

type Mutation func(m map[string]any)

// DtoMap round-trips v through JSON so tests can drop or replace fields.
func DtoMap(t *testing.T, v any, muts ...Mutation) map[string]any {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	for _, f := range muts {
		f(m)
	}
	return m
}

// Field sets key to value, or removes key when value is nil.
func Field(key string, value any) Mutation {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}

// Null sends key as an explicit JSON null, which PATCH bodies treat as a clear.
func Null(key string) Mutation {
	return func(m map[string]any) {
		m[key] = nil
	}
}
