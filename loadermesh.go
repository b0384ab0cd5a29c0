// Package loadermesh provides a high-level façade over the loader manager and
// its collaborating services (environment, reference store, property store,
// type table & logging) enabling concise management of named, hierarchical
// loader resources. Most applications interact with this package by:
//  1. Creating a LoaderMesh via New() (optionally overriding default in-memory services)
//  2. Creating or extending loaders through Execute / CreateOrModify
//  3. Exporting search paths (ExportPath) or printing the loader report (Report)
//
// The façade delegates policy and dispatch to manager.Manager while keeping
// setup and usage ergonomics concise. All defaults are safe for local
// development and testing; embedders typically supply their own environment,
// durable stores and a structured logger.
package loadermesh

import (
	"os"

	"github.com/hupe1980/loadermesh/core"
	"github.com/hupe1980/loadermesh/handler"
	"github.com/hupe1980/loadermesh/host"
	"github.com/hupe1980/loadermesh/logging"
	"github.com/hupe1980/loadermesh/manager"
	"github.com/hupe1980/loadermesh/params"
	"github.com/hupe1980/loadermesh/property"
	"github.com/hupe1980/loadermesh/reference"
	"github.com/hupe1980/loadermesh/typedef"
)

// Options configures the LoaderMesh instance.
type Options struct {
	// Environment exposes the host runtime's well-known root loaders.
	// Defaults to an empty in-memory environment.
	Environment core.Environment

	// Stores (default to in-memory implementations if not provided)
	ReferenceStore core.ReferenceStore
	PropertyStore  core.PropertyStore
	TypeTable      core.TypeTable

	// Handlers is the ordered dispatch table consulted for every action.
	// Defaults to the built-in standard and sealed handlers.
	Handlers *handler.Set

	// Parameters configures construction of new loaders (variant, parent,
	// delegation order).
	Parameters *params.Parameters

	// FailFast escalates every failure to an aborting error instead of a
	// logged warning with degraded continuation.
	FailFast bool

	// RestrictMutation turns create/append/reset attempts against well-known
	// root loaders into logged no-ops.
	RestrictMutation bool

	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger

	// Reporter receives report output (defaults to stdout)
	Reporter core.Reporter
}

// LoaderMesh is the high-level façade aggregating the manager and its services.
type LoaderMesh struct {
	opts    Options
	manager *manager.Manager
}

// New creates a new LoaderMesh instance with optional overrides. Any unset
// service is initialized with an in-memory implementation.
func New(optFns ...func(o *Options)) *LoaderMesh {
	opts := Options{
		Environment:    host.NewInMemoryEnvironment(host.EnvironmentConfig{}),
		ReferenceStore: reference.NewInMemoryStore(),
		PropertyStore:  property.NewInMemoryStore(),
		TypeTable:      typedef.NewInMemoryTable(),
		Handlers:       handler.DefaultSet(),
		Parameters:     params.Default(),
		Logger:         logging.NoOpLogger{},
		Reporter:       core.WriterReporter{W: os.Stdout},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	m := manager.New(func(o *manager.Options) {
		o.Environment = opts.Environment
		o.ReferenceStore = opts.ReferenceStore
		o.PropertyStore = opts.PropertyStore
		o.TypeTable = opts.TypeTable
		o.Handlers = opts.Handlers
		o.Parameters = opts.Parameters
		o.FailFast = opts.FailFast
		o.RestrictMutation = opts.RestrictMutation
		o.Logger = opts.Logger
		o.Reporter = opts.Reporter
	})

	return &LoaderMesh{opts: opts, manager: m}
}

// Execute performs a full invocation: create-or-modify the target loader,
// then export its path if s names a property.
func (m *LoaderMesh) Execute(s manager.Spec) error {
	return m.manager.Execute(s)
}

// CreateOrModify creates the referenced loader if absent or appends the path
// elements to it if present. With reset, a fresh loader replaces the binding.
func (m *LoaderMesh) CreateOrModify(ref core.LoaderRef, additions []string, reset bool) error {
	return m.manager.CreateOrModify(ref, additions, reset)
}

// ExportPath stores the referenced loader's joined search path under the
// property name.
func (m *LoaderMesh) ExportPath(ref core.LoaderRef, propertyName string) error {
	return m.manager.ExportPath(ref, propertyName)
}

// Report prints the deduplicated loader report to the configured reporter.
func (m *LoaderMesh) Report() error {
	return m.manager.Report()
}

// References returns the reference store in use.
func (m *LoaderMesh) References() core.ReferenceStore { return m.opts.ReferenceStore }

// Properties returns the property store in use.
func (m *LoaderMesh) Properties() core.PropertyStore { return m.opts.PropertyStore }

// Types returns the type table in use.
func (m *LoaderMesh) Types() core.TypeTable { return m.opts.TypeTable }
