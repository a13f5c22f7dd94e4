package freqtable_test

import (
	"testing"

	"github.com/scottcagno/freqtable"
	"github.com/scottcagno/freqtable/pkg/hashtable/linear"
	"github.com/stretchr/testify/assert"
)

func Test_Table_Interface(t *testing.T) {
	var tbl freqtable.Table = linear.NewDefaultTable()
	tbl.Insert("cat")
	tbl.Insert("cat")
	tbl.Insert("dog")
	assert.Equal(t, 2, tbl.Len())
	assert.Equal(t, 2, tbl.Frequency("cat"))
	assert.True(t, tbl.Contains("dog"))

	removed, ok := tbl.Remove("dog")
	assert.True(t, ok)
	assert.Equal(t, "dog", removed)

	stats := tbl.Stats()
	assert.Equal(t, 1, stats.Keys)
	assert.Equal(t, 2, stats.Occupied)
	assert.Equal(t, 10, stats.Capacity)
	assert.Equal(t, 0.2, stats.LoadFactor)
}
