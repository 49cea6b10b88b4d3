//go:build unit

package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateKey(t *testing.T) {
	tests := []struct {
		name      string
		prefix    string
		namespace string
		key       string
		want      string
	}{
		{name: "with prefix", prefix: "sandals", namespace: "checkout-storage", key: "abc", want: "sandals:checkout-storage:abc"},
		{name: "trailing colon in prefix", prefix: "sandals:", namespace: "rl", key: "1.2.3.4", want: "sandals:rl:1.2.3.4"},
		{name: "no prefix", prefix: "", namespace: "checkout-session", key: "abc", want: "checkout-session:abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewRedisCache(nil, tt.prefix)
			assert.Equal(t, tt.want, c.GenerateKey(tt.namespace, tt.key))
		})
	}
}
