// Package property provides implementations of the core.PropertyStore
// interface, the external project-wide property storage that the path
// export operation writes joined search paths into.
package property
