package params

import (
	"testing"

	"github.com/hupe1980/loadermesh/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	p := Default()
	assert.Equal(t, string(core.VariantStandard), p.Variant)
	assert.True(t, p.DelegatesParentFirst())
	assert.True(t, p.ParentRef().IsWellKnown())
	assert.Equal(t, "core", p.ParentRef().Name())
}

func TestNormalize_FillsDefaults(t *testing.T) {
	p := &Parameters{}
	require.NoError(t, p.Normalize())
	assert.Equal(t, string(core.VariantStandard), p.Variant)
	assert.Equal(t, "core", p.Parent)
	assert.True(t, p.DelegatesParentFirst())
}

func TestNormalize_UnknownVariant(t *testing.T) {
	p := &Parameters{Variant: "exotic"}
	assert.Error(t, p.Normalize())
}

func TestParentRef_Named(t *testing.T) {
	p := &Parameters{Parent: "plugin-deps"}
	ref := p.ParentRef()
	assert.False(t, ref.IsWellKnown())
	assert.Equal(t, "plugin-deps", ref.Name())
}

func TestRegistry_DuplicateName(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register("plugin", Default()))
	assert.Error(t, r.Register("plugin", Default()))

	p, ok := r.Resolve("plugin")
	assert.True(t, ok)
	assert.NotNil(t, p)
	assert.Equal(t, []string{"plugin"}, r.Names())
}

func TestLoad_TOML(t *testing.T) {
	data := []byte(`
[params.plugin]
variant = "standard"
parent = "context"
parent_first = false
isolated = true

[params.bare]
`)
	r, err := Load(data)
	require.NoError(t, err)

	p, ok := r.Resolve("plugin")
	require.True(t, ok)
	assert.False(t, p.DelegatesParentFirst())
	assert.True(t, p.Isolated)
	assert.Equal(t, "context", p.ParentRef().Name())

	bare, ok := r.Resolve("bare")
	require.True(t, ok)
	assert.Equal(t, string(core.VariantStandard), bare.Variant)
	assert.True(t, bare.DelegatesParentFirst())
}

func TestLoad_BadTOML(t *testing.T) {
	_, err := Load([]byte("params = ["))
	assert.Error(t, err)
}
