package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	err := SetLanguage("en-US")
	assert.NoError(err)

	assert.Equal("line 3 'add' oops", From("line %d '%v' %v", 3, "add", "oops"))
}

func TestSetLanguage_Invalid(t *testing.T) {
	assert := assert.New(t)

	err := SetLanguage("not a language tag!")
	assert.Error(err)

	// Printer is unchanged.
	assert.Equal("x", From("%v", "x"))
}
