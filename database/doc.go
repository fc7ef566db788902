// Package database opens Bun database handles from configuration, classifies
// driver errors, and provides the query hooks and logger used by the
// catalog. Opened handles belong to the caller.
package database
