package stringx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConversions(t *testing.T) {
	t.Parallel()

	for uc, tc := range map[string]struct {
		value string
	}{
		"empty":     {value: ""},
		"path":      {value: "/w/x/y/z/"},
		"multibyte": {value: "ä/ö/ü"},
	} {
		t.Run(uc, func(t *testing.T) {
			t.Parallel()

			// WHEN
			bytes := ToBytes(tc.value)

			// THEN
			assert.Len(t, bytes, len(tc.value))
			assert.Equal(t, tc.value, ToString(bytes))
		})
	}
}
