package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	assert.Equal(t, "navy", Fold("  NaVy "))
	assert.Equal(t, "", Fold("   "))
	assert.Equal(t, "shoe", Fold("Shoe"))
}

func TestSplitFold(t *testing.T) {
	assert.Equal(t, []string{"white", "navy", "red"}, SplitFold("White, navy,,RED , white"))
	assert.Nil(t, SplitFold(""))
	assert.Nil(t, SplitFold(" , "))
}
