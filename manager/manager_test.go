package manager

import (
	"errors"
	"testing"

	"github.com/hupe1980/loadermesh/core"
	"github.com/hupe1980/loadermesh/handler"
	"github.com/hupe1980/loadermesh/host"
	"github.com/hupe1980/loadermesh/internal/testutil"
	"github.com/hupe1980/loadermesh/params"
	"github.com/hupe1980/loadermesh/property"
	"github.com/hupe1980/loadermesh/reference"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spyAdapter counts mutating calls so tests can assert a policy guard
// returned before any adapter ran.
type spyAdapter struct {
	creates int
	appends int
}

func (a *spyAdapter) Create(spec handler.CreateSpec) (*core.Loader, error) {
	a.creates++
	return core.NewLoader(core.LoaderConfig{
		Variant:     core.VariantStandard,
		Parent:      spec.Parent,
		Path:        spec.Path,
		ParentFirst: spec.ParentFirst,
		Isolated:    spec.Isolated,
	}), nil
}

func (a *spyAdapter) Append(l *core.Loader, elems []string) error {
	a.appends++
	l.AppendPath(elems...)
	return nil
}

func (a *spyAdapter) Path(l *core.Loader, toFile bool) ([]string, error) {
	return l.Path(), nil
}

func (a *spyAdapter) Report(core.Reporter, *core.Loader, string) {}

func (a *spyAdapter) AddReportable(handler.Visitor, *core.Loader, string) error { return nil }

func spyHandler(a *spyAdapter) *handler.Handler {
	return handler.NewHandler(
		"spy",
		func(*core.Loader) bool { return true },
		func() handler.Adapter { return a },
		handler.ActionCreate, handler.ActionAppend, handler.ActionGetPath, handler.ActionReport,
	)
}

func assertOpCode(t *testing.T, err error, code string) {
	t.Helper()
	var opErr *core.OpError
	require.True(t, errors.As(err, &opErr), "expected OpError, got %v", err)
	assert.Equal(t, code, opErr.Code)
}

// -------------------- Create / Modify Tests --------------------

func TestManagerCreateOrModify_CreateWhenAbsent(t *testing.T) {
	refs := reference.NewInMemoryStore()
	m := New(func(o *Options) { o.ReferenceStore = refs })

	ref := core.NamedRef("build")
	require.NoError(t, m.CreateOrModify(ref, []string{"lib/a", "lib/b"}, false))

	l, err := refs.Get("build")
	require.NoError(t, err)
	require.NotNil(t, l)
	assert.Equal(t, core.VariantStandard, l.Variant())
	assert.Equal(t, []string{"lib/a", "lib/b"}, l.Path())
}

func TestManagerCreateOrModify_NoOpWhenPresentWithoutAdditions(t *testing.T) {
	refs := reference.NewInMemoryStore()
	existing := core.NewLoader(core.LoaderConfig{Path: []string{"lib/a"}})
	require.NoError(t, refs.Set("build", existing))

	m := New(func(o *Options) { o.ReferenceStore = refs })
	require.NoError(t, m.CreateOrModify(core.NamedRef("build"), nil, false))

	l, err := refs.Get("build")
	require.NoError(t, err)
	assert.Same(t, existing, l)
	assert.Equal(t, []string{"lib/a"}, l.Path())
}

func TestManagerCreateOrModify_AppendWhenPresent(t *testing.T) {
	refs := reference.NewInMemoryStore()
	existing := core.NewLoader(core.LoaderConfig{Path: []string{"lib/a"}})
	require.NoError(t, refs.Set("build", existing))

	m := New(func(o *Options) { o.ReferenceStore = refs })
	require.NoError(t, m.CreateOrModify(core.NamedRef("build"), []string{"lib/b"}, false))

	assert.Equal(t, []string{"lib/a", "lib/b"}, existing.Path())
}

func TestManagerCreateOrModify_AppendDispatchMiss(t *testing.T) {
	refs := reference.NewInMemoryStore()
	sealed := core.NewLoader(core.LoaderConfig{Variant: core.VariantSealed})
	require.NoError(t, refs.Set("host", sealed))

	m := New(func(o *Options) { o.ReferenceStore = refs })
	err := m.CreateOrModify(core.NamedRef("host"), []string{"lib/a"}, false)
	assertOpCode(t, err, core.CodeDispatchMiss)
	assert.Empty(t, sealed.Path())
}

func TestManagerCreateOrModify_ResetRebindsNamedRef(t *testing.T) {
	refs := reference.NewInMemoryStore()
	old := core.NewLoader(core.LoaderConfig{Path: []string{"lib/old"}})
	require.NoError(t, refs.Set("build", old))

	m := New(func(o *Options) { o.ReferenceStore = refs })
	require.NoError(t, m.CreateOrModify(core.NamedRef("build"), []string{"lib/new"}, true))

	l, err := refs.Get("build")
	require.NoError(t, err)
	require.NotNil(t, l)
	assert.NotSame(t, old, l)
	assert.Equal(t, []string{"lib/new"}, l.Path())
	// The replaced instance is untouched; its lifetime is owned by the host.
	assert.Equal(t, []string{"lib/old"}, old.Path())
}

func TestManagerCreateOrModify_ResetUnsupportedForFixedRoot(t *testing.T) {
	m := New()
	err := m.CreateOrModify(core.RefTo(core.RootSystem), []string{"lib/a"}, true)
	assertOpCode(t, err, core.CodeUnsupportedReset)
}

func TestManagerCreateOrModify_CreateUnsupportedForFixedRoot(t *testing.T) {
	// The application root is absent and cannot be rebound, so the implied
	// CREATE is refused.
	m := New()
	err := m.CreateOrModify(core.RefTo(core.RootApplication), []string{"lib/a"}, false)
	assertOpCode(t, err, core.CodeUnsupportedReset)
}

func TestManagerCreateOrModify_ContextRootCanBeCreated(t *testing.T) {
	env := host.NewInMemoryEnvironment(host.EnvironmentConfig{})
	m := New(func(o *Options) { o.Environment = env })

	require.NoError(t, m.CreateOrModify(core.RefTo(core.RootContext), []string{"lib/ctx"}, false))

	l := env.RootLoader(core.RootContext)
	require.NotNil(t, l)
	assert.Equal(t, []string{"lib/ctx"}, l.Path())
}

func TestManagerCreateOrModify_NoneRefRejected(t *testing.T) {
	m := New()
	err := m.CreateOrModify(core.RefTo(core.RootNone), []string{"lib/a"}, false)
	assertOpCode(t, err, core.CodeMissingTarget)
}

func TestManagerCreateOrModify_ParentResolvedFromParameters(t *testing.T) {
	sys := core.NewLoader(core.LoaderConfig{Variant: core.VariantSealed})
	env := host.NewInMemoryEnvironment(host.EnvironmentConfig{System: sys})
	refs := reference.NewInMemoryStore()

	p := params.Default()
	p.Parent = "system"

	m := New(func(o *Options) {
		o.Environment = env
		o.ReferenceStore = refs
		o.Parameters = p
	})
	require.NoError(t, m.CreateOrModify(core.NamedRef("build"), []string{"lib/a"}, false))

	l, err := refs.Get("build")
	require.NoError(t, err)
	require.NotNil(t, l)
	assert.Same(t, sys, l.Parent())
	assert.True(t, l.ParentFirst())
}

// -------------------- Restricted Mutation Tests --------------------

func TestManagerRestricted_WellKnownMutationIsNoOp(t *testing.T) {
	spy := &spyAdapter{}
	ctx := core.NewLoader(core.LoaderConfig{Path: []string{"lib/ctx"}})
	env := host.NewInMemoryEnvironment(host.EnvironmentConfig{Context: ctx})

	m := New(func(o *Options) {
		o.Environment = env
		o.Handlers = handler.NewSet(spyHandler(spy))
		o.CreateHandler = spyHandler(spy)
		o.RestrictMutation = true
	})

	require.NoError(t, m.CreateOrModify(core.RefTo(core.RootContext), []string{"lib/x"}, false))
	require.NoError(t, m.CreateOrModify(core.RefTo(core.RootContext), []string{"lib/x"}, true))

	assert.Equal(t, 0, spy.creates)
	assert.Equal(t, 0, spy.appends)
	assert.Equal(t, []string{"lib/ctx"}, ctx.Path())
}

func TestManagerRestricted_NamedRefsStayMutable(t *testing.T) {
	refs := reference.NewInMemoryStore()
	m := New(func(o *Options) {
		o.ReferenceStore = refs
		o.RestrictMutation = true
	})

	require.NoError(t, m.CreateOrModify(core.NamedRef("build"), []string{"lib/a"}, false))
	l, err := refs.Get("build")
	require.NoError(t, err)
	assert.NotNil(t, l)
}

// -------------------- Export Tests --------------------

func TestManagerExportPath_JoinsWithSemicolon(t *testing.T) {
	refs := reference.NewInMemoryStore()
	props := property.NewInMemoryStore()
	require.NoError(t, refs.Set("build", core.NewLoader(core.LoaderConfig{Path: []string{"a", "b", "c"}})))

	m := New(func(o *Options) {
		o.ReferenceStore = refs
		o.PropertyStore = props
	})
	require.NoError(t, m.ExportPath(core.NamedRef("build"), "build.path"))

	v, ok := props.Get("build.path")
	require.True(t, ok)
	assert.Equal(t, "a;b;c", v)
}

func TestManagerExportPath_EmptyPathStoresEmptyString(t *testing.T) {
	refs := reference.NewInMemoryStore()
	props := property.NewInMemoryStore()
	require.NoError(t, refs.Set("build", core.NewLoader(core.LoaderConfig{})))

	m := New(func(o *Options) {
		o.ReferenceStore = refs
		o.PropertyStore = props
	})
	require.NoError(t, m.ExportPath(core.NamedRef("build"), "build.path"))

	v, ok := props.Get("build.path")
	require.True(t, ok)
	assert.Equal(t, "", v)
}

func TestManagerExportPath_StripsFileScheme(t *testing.T) {
	refs := reference.NewInMemoryStore()
	props := property.NewInMemoryStore()
	require.NoError(t, refs.Set("build", core.NewLoader(core.LoaderConfig{Path: []string{"file:///opt/a", "b"}})))

	m := New(func(o *Options) {
		o.ReferenceStore = refs
		o.PropertyStore = props
	})
	require.NoError(t, m.ExportPath(core.NamedRef("build"), "build.path"))

	v, _ := props.Get("build.path")
	assert.Equal(t, "/opt/a;b", v)
}

func TestManagerExportPath_UnassignedLoader(t *testing.T) {
	props := property.NewInMemoryStore()
	m := New(func(o *Options) { o.PropertyStore = props })

	err := m.ExportPath(core.NamedRef("missing"), "build.path")
	assertOpCode(t, err, core.CodeMissingTarget)

	_, ok := props.Get("build.path")
	assert.False(t, ok)
}

// -------------------- Execute Tests --------------------

func TestManagerExecute_CreateAndExport(t *testing.T) {
	refs := reference.NewInMemoryStore()
	props := property.NewInMemoryStore()

	m := New(func(o *Options) {
		o.ReferenceStore = refs
		o.PropertyStore = props
	})
	require.NoError(t, m.Execute(Spec{
		Loader:   core.NamedRef("build"),
		Path:     []string{"x", "y"},
		Property: "build.path",
	}))

	l, err := refs.Get("build")
	require.NoError(t, err)
	require.NotNil(t, l)

	v, ok := props.Get("build.path")
	require.True(t, ok)
	assert.Equal(t, "x;y", v)
}

func TestManagerExecute_FailureSkipsExport(t *testing.T) {
	props := property.NewInMemoryStore()
	m := New(func(o *Options) { o.PropertyStore = props })

	err := m.Execute(Spec{
		Loader:   core.RefTo(core.RootSystem),
		Path:     []string{"lib/a"},
		Reset:    true,
		Property: "build.path",
	})
	require.Error(t, err)

	_, ok := props.Get("build.path")
	assert.False(t, ok)
}

// -------------------- Report Tests --------------------

func TestManagerReport_WritesToReporter(t *testing.T) {
	env := testutil.NewGraphBuilder().
		Loader("sys", core.VariantSealed, "", "lib/rt").
		Root(core.RootSystem, "sys").
		Bootstrap("boot/a").
		BuildEnvironment()

	rep := &testutil.LinesReporter{}
	m := New(func(o *Options) {
		o.Environment = env
		o.Reporter = rep
	})
	require.NoError(t, m.Report())

	text := rep.Text()
	assert.Contains(t, text, "---------- Loader Report ----------")
	assert.Contains(t, text, " 1. system")
	assert.Contains(t, text, "---------- End Of Loader Report ----------")
}

func TestManagerReport_FailFastOnUnknownVariant(t *testing.T) {
	env := host.NewInMemoryEnvironment(host.EnvironmentConfig{
		System: core.NewLoader(core.LoaderConfig{Variant: "exotic"}),
	})

	rep := &testutil.LinesReporter{}
	m := New(func(o *Options) {
		o.Environment = env
		o.Reporter = rep
		o.FailFast = true
	})

	err := m.Report()
	assertOpCode(t, err, core.CodeDispatchMiss)
}

// Guards against accidental changes to the exported separator.
func TestPathSeparator(t *testing.T) {
	assert.Equal(t, ";", pathSeparator)
}
