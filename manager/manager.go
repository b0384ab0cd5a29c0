package manager

import (
	"fmt"
	"os"
	"strings"

	"github.com/hupe1980/loadermesh/core"
	"github.com/hupe1980/loadermesh/handler"
	"github.com/hupe1980/loadermesh/host"
	"github.com/hupe1980/loadermesh/logging"
	"github.com/hupe1980/loadermesh/params"
	"github.com/hupe1980/loadermesh/property"
	"github.com/hupe1980/loadermesh/reference"
	"github.com/hupe1980/loadermesh/report"
	"github.com/hupe1980/loadermesh/typedef"
)

// pathSeparator joins path elements for the exported property value.
const pathSeparator = ";"

// Options holds dependency + configuration overrides passed to New().
type Options struct {
	// Environment exposes the host's well-known root loaders.
	Environment core.Environment
	// ReferenceStore resolves and stores named loader bindings.
	ReferenceStore core.ReferenceStore
	// PropertyStore receives exported search paths.
	PropertyStore core.PropertyStore
	// TypeTable enumerates type definitions for the report walk.
	TypeTable core.TypeTable
	// Handlers is the ordered dispatch table. Defaults to handler.DefaultSet.
	Handlers *handler.Set
	// CreateHandler constructs brand-new loaders. Defaults to the standard
	// handler.
	CreateHandler *handler.Handler
	// Parameters configures construction of new loaders.
	Parameters *params.Parameters
	// FailFast escalates every failure to an aborting error. When unset,
	// failures are logged at warning severity and returned to the caller
	// while composite operations continue in degraded mode.
	FailFast bool
	// RestrictMutation forbids create/append/reset against well-known root
	// loaders; such attempts succeed as logged no-ops.
	RestrictMutation bool
	// Logger provides structured logging. Defaults to NoOp logger if nil.
	Logger logging.Logger
	// Reporter receives report output. Defaults to stdout.
	Reporter core.Reporter
}

// Manager orchestrates loader operations: it resolves a loader reference,
// consults the handler set for the required action, invokes the resolved
// adapter and applies the result (rebinding the reference, writing a
// property or emitting report lines).
//
// All operations are synchronous and run to completion in the caller's
// goroutine. The loader graph must not be mutated concurrently with a
// report walk.
type Manager struct {
	env      core.Environment
	refs     core.ReferenceStore
	props    core.PropertyStore
	types    core.TypeTable
	handlers *handler.Set
	creator  *handler.Handler
	params   *params.Parameters

	failFast   bool
	restricted bool

	logger   logging.Logger
	reporter core.Reporter
}

// New constructs a Manager with optional overrides. Any unset collaborator
// is initialized with an in-memory implementation.
func New(optFns ...func(o *Options)) *Manager {
	opts := Options{
		Environment:    host.NewInMemoryEnvironment(host.EnvironmentConfig{}),
		ReferenceStore: reference.NewInMemoryStore(),
		PropertyStore:  property.NewInMemoryStore(),
		TypeTable:      typedef.NewInMemoryTable(),
		Handlers:       handler.DefaultSet(),
		CreateHandler:  handler.StandardHandler(),
		Parameters:     params.Default(),
		Logger:         logging.NoOpLogger{},
		Reporter:       core.WriterReporter{W: os.Stdout},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Manager{
		env:        opts.Environment,
		refs:       opts.ReferenceStore,
		props:      opts.PropertyStore,
		types:      opts.TypeTable,
		handlers:   opts.Handlers,
		creator:    opts.CreateHandler,
		params:     opts.Parameters,
		failFast:   opts.FailFast,
		restricted: opts.RestrictMutation,
		logger:     opts.Logger,
		reporter:   opts.Reporter,
	}
}

// Spec describes one manager invocation: the target reference, the path
// elements to add, the reset flag and an optional property to export the
// resulting search path into.
type Spec struct {
	Loader   core.LoaderRef
	Path     []string
	Reset    bool
	Property string
}

// Execute performs a full invocation: create-or-modify the target loader,
// then export its path if a property name was given. Under fail-fast, the
// first failure aborts; otherwise the failure is logged, the remaining
// steps are skipped and the error is returned as a failure indicator.
func (m *Manager) Execute(s Spec) error {
	if err := m.CreateOrModify(s.Loader, s.Path, s.Reset); err != nil {
		return err
	}
	if s.Property != "" {
		return m.ExportPath(s.Loader, s.Property)
	}
	return nil
}

// CreateOrModify decides and performs the mutation for the target
// reference:
//
//   - absent loader: create a new one from the configured parameters
//   - present loader, no path to add: successful no-op
//   - present loader, path to add: append through the matching adapter
//   - reset: recreate, provided the reference supports rebinding
//
// Mutations against well-known roots under the restricted policy succeed as
// logged no-ops without invoking any adapter. On successful creation the
// new loader is bound back into the reference.
func (m *Manager) CreateOrModify(ref core.LoaderRef, additions []string, reset bool) error {
	if ref.IsNone() {
		return m.fail(core.NewOpError(ref.Name(), "target reference cannot be none", core.CodeMissingTarget))
	}

	var existing *core.Loader
	if !reset {
		l, err := ref.Resolve(m.env, m.refs)
		if err != nil {
			return m.fail(err)
		}
		existing = l
	}

	create := existing == nil
	modify := existing != nil && len(additions) > 0
	if !create && !modify {
		m.logger.Debug("nothing to do for %s: loader present, no path to add", ref.Name())
		return nil
	}

	if m.restricted && ref.IsWellKnown() {
		m.logger.Warn("changing %s is disabled by the restricted mutation policy", ref.Name())
		return nil
	}

	if create && !ref.ResetPossible() {
		verb := "creating"
		if reset {
			verb = "resetting"
		}
		return m.fail(core.NewOpError(ref.Name(), verb+" this loader is not possible", core.CodeUnsupportedReset))
	}

	if create {
		m.logger.Debug("handling %s: not found, creating with %d path elements", ref.Name(), len(additions))
		return m.create(ref, additions)
	}

	m.logger.Debug("handling %s: found, appending %d path elements", ref.Name(), len(additions))
	return m.appendPath(ref, existing, additions)
}

func (m *Manager) create(ref core.LoaderRef, additions []string) error {
	parent, err := m.params.ParentRef().Resolve(m.env, m.refs)
	if err != nil {
		return m.fail(fmt.Errorf("failed to resolve parent for %s: %w", ref.Name(), err))
	}

	adapter := m.creator.Adapter()
	l, err := adapter.Create(handler.CreateSpec{
		Parent:      parent,
		Path:        additions,
		ParentFirst: m.params.DelegatesParentFirst(),
		Isolated:    m.params.Isolated,
	})
	if err != nil {
		return m.fail(fmt.Errorf("failed to create loader for %s: %w", ref.Name(), err))
	}

	if err := ref.Bind(m.env, m.refs, l); err != nil {
		return m.fail(fmt.Errorf("failed to bind loader for %s: %w", ref.Name(), err))
	}

	m.logger.Info("created loader %s for %s (parent=%s)", l.ID(), ref.Name(), m.params.Parent)
	return nil
}

func (m *Manager) appendPath(ref core.LoaderRef, l *core.Loader, additions []string) error {
	h, ok := m.handlers.Resolve(l, handler.ActionAppend)
	if !ok {
		return m.fail(core.NewOpError(ref.Name(), "no handler supports append for variant "+string(l.Variant()), core.CodeDispatchMiss))
	}
	if err := h.Adapter().Append(l, additions); err != nil {
		return m.fail(fmt.Errorf("failed to append path to %s: %w", ref.Name(), err))
	}

	m.logger.Debug("appended %d path elements to %s via handler %s", len(additions), ref.Name(), h.Name())
	return nil
}

// ExportPath resolves the loader, reads its effective search path through a
// GET-PATH dispatch (local file scheme prefixes stripped), joins the
// elements with ";" and stores the result under the property name. The
// property is never partially written; any failure leaves it untouched.
func (m *Manager) ExportPath(ref core.LoaderRef, propertyName string) error {
	l, err := ref.Resolve(m.env, m.refs)
	if err != nil {
		return m.fail(err)
	}
	if l == nil {
		return m.fail(core.NewOpError(ref.Name(), "loader is not assigned", core.CodeMissingTarget))
	}

	h, ok := m.handlers.Resolve(l, handler.ActionGetPath)
	if !ok {
		return m.fail(core.NewOpError(ref.Name(), "no handler supports get-path for variant "+string(l.Variant()), core.CodeDispatchMiss))
	}

	elems, err := h.Adapter().Path(l, true)
	if err != nil {
		return m.fail(fmt.Errorf("failed to read path of %s: %w", ref.Name(), err))
	}

	if err := m.props.Set(propertyName, strings.Join(elems, pathSeparator)); err != nil {
		return m.fail(fmt.Errorf("failed to set property %s: %w", propertyName, err))
	}

	m.logger.Debug("exported path of %s to property %s (%d elements)", ref.Name(), propertyName, len(elems))
	return nil
}

// Report produces the loader report: a deterministic description of every
// loader reachable from the well-known roots, the reference store and the
// type table, deduplicated by instance identity. Under fail-fast any
// dispatch miss aborts; otherwise the walk degrades to a partial report. A
// duplicate name aborts regardless, it indicates a configuration defect.
func (m *Manager) Report() error {
	err := report.Run(m.env, m.refs, m.types, m.handlers, m.reporter, func(o *report.WalkOptions) {
		o.FailFast = m.failFast
		o.Logger = m.logger
	})
	if err != nil {
		return m.fail(err)
	}
	return nil
}

// fail routes an error through the fail-fast policy: under fail-fast the
// error aborts the invocation untouched; otherwise it is logged at warning
// severity and returned as a failure indicator for the caller to act on.
func (m *Manager) fail(err error) error {
	if !m.failFast {
		m.logger.Warn("%v", err)
	}
	return err
}
