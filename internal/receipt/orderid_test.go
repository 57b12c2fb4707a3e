package receipt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateOrderID(t *testing.T) {
	t.Run("Format", func(t *testing.T) {
		id := GenerateOrderID()
		// Expected format: MMS-YYYYMMDD-###
		// Example: MMS-20240115-042

		assert.True(t, strings.HasPrefix(id, "MMS-"), "Should start with MMS-")

		parts := strings.Split(id, "-")
		if assert.Len(t, parts, 3, "Should have 3 parts separated by hyphens") {
			assert.Equal(t, "MMS", parts[0])
			assert.Len(t, parts[1], 8, "Date part YYYYMMDD should be 8 chars")
			assert.Len(t, parts[2], 3, "Suffix should be zero-padded to 3 chars")
		}
	})

	t.Run("SuffixIsNumeric", func(t *testing.T) {
		id := GenerateOrderID()
		suffix := id[len(id)-3:]
		for _, r := range suffix {
			assert.True(t, r >= '0' && r <= '9', "suffix char %q should be a digit", r)
		}
	})
}
