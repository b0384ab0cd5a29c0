package typedef

import (
	"testing"

	"github.com/hupe1980/loadermesh/core"
	"github.com/stretchr/testify/assert"
)

// Interface compliance (compile-time assertion)
var _ core.TypeTable = (*InMemoryTable)(nil)

func TestInMemoryTable_DefinitionsSorted(t *testing.T) {
	tbl := NewInMemoryTable()
	l := core.NewLoader(core.LoaderConfig{})
	tbl.Register("weaver", l)
	tbl.Register("bundler", l)

	defs := tbl.Definitions()
	assert.Len(t, defs, 2)
	assert.Equal(t, "bundler", defs[0].Name)
	assert.Equal(t, "weaver", defs[1].Name)
	assert.Same(t, l, defs[0].Loader)
}
