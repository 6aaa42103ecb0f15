//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// Mutator edits a request body after it has been flattened to JSON keys.
type Mutator func(body map[string]any)

// Body flattens a request DTO into its JSON object form and applies muts in order,
// so validation cases can start from a valid request and break one field.
func Body(t *testing.T, dto any, muts ...Mutator) map[string]any {
	t.Helper()

	raw, err := json.Marshal(dto)
	require.NoError(t, err)
	body := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &body))

	for _, m := range muts {
		if m != nil {
			m(body)
		}
	}
	return body
}

func With(key string, value any) Mutator {
	return func(body map[string]any) { body[key] = value }
}

func Without(key string) Mutator {
	return func(body map[string]any) { delete(body, key) }
}
