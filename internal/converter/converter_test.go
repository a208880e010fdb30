package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "1.5", FormatAmount(150, 2))
	assert.Equal(t, "3", FormatAmount(3, 0))
	assert.Equal(t, "0.000000000000000001", FormatAmount(1, 18))
}
