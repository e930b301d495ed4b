package record_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arthurdick/familytree-text/record"
)

func TestPlace_IsZero(t *testing.T) {
	assert.True(t, record.Place{}.IsZero())
	assert.False(t, record.Place{Display: "Paris"}.IsZero())
}
