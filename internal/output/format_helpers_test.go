package output

import (
	"testing"

	"github.com/rpgo/taxhawk/pkg/rupee"
	"github.com/stretchr/testify/assert"
)

func TestFormatRupee(t *testing.T) {
	assert.Equal(t, "₹16120", FormatRupee(rupee.FromInt(16120)))
	assert.Equal(t, "₹0", FormatRupee(rupee.Zero))
}
