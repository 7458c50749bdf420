package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitKeys(t *testing.T) {
	assert.Equal(t, []string{"uk", "iceland"}, splitKeys(" uk, ,iceland,"))
	assert.Empty(t, splitKeys(""))
}
