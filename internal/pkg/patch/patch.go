package patch

import "encoding/json"

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// Nullable is a PATCH field that distinguishes "absent" from "set to null".
// Set is true when the key was present in the request body.
type Nullable[T any] struct {
	Set   bool
	Value *T
}

// CoalesceNullable applies n onto fallback; an explicit null clears the value.
func CoalesceNullable[T any](n Nullable[T], fallback *T) *T {
	if !n.Set {
		return fallback
	}
	return n.Value
}

func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n.Value = &v
	return nil
}
