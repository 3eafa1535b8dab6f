//go:build unit || e2e

package testutil

// Field builds a DtoMap mutation: a nil value removes the key entirely
// (missing required field), anything else overwrites it (malformed value).
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}
