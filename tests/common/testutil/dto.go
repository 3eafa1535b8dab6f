//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"
)

// DtoMap converts a request DTO into the generic map a raw JSON body decodes
// to, then applies the given mutations. Binding-failure tests use it to drop
// or corrupt single fields of an otherwise valid request.
func DtoMap(t *testing.T, v any, muts ...func(map[string]any)) map[string]any {
	t.Helper()

	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal dto: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("unmarshal dto into map: %v", err)
	}

	for _, f := range muts {
		f(m)
	}
	return m
}
