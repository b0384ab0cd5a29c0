// Package testutil contains helper builders and utilities used across tests
// to reduce boilerplate when constructing loader graphs (shared parents,
// aliased roots, defective cycles) and capturing report output. These
// helpers are intentionally minimal and avoid adding third-party
// dependencies. They are not intended for production usage.
package testutil
