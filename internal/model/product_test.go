package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind_Valid(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected bool
	}{
		{KindFrozen, true},
		{KindFresh, true},
		{"rotten", false},
		{"", false},
		{"Fresca", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.kind.Valid())
		})
	}
}

func TestProductInput_Changes(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected map[string]interface{}
	}{
		{
			name:     "Empty payload",
			body:     `{}`,
			expected: map[string]interface{}{},
		},
		{
			name:     "Null fields are treated as omitted",
			body:     `{"name": null, "kind": null, "quantity": null, "out_of_stock": null}`,
			expected: map[string]interface{}{},
		},
		{
			name:     "Only quantity",
			body:     `{"quantity": 0}`,
			expected: map[string]interface{}{"quantity": 0},
		},
		{
			name: "All fields",
			body: `{"name": "Lasanha", "kind": "fresca", "quantity": 5, "out_of_stock": false}`,
			expected: map[string]interface{}{
				"name":         "Lasanha",
				"kind":         "fresca",
				"quantity":     5,
				"out_of_stock": false,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in ProductInput
			require.NoError(t, json.Unmarshal([]byte(tt.body), &in))
			assert.Equal(t, tt.expected, in.Changes())
		})
	}
}
