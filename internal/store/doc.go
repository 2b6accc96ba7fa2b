// Package store provides the SQLite-backed record database: save, load,
// list, and delete potential records by identifier, with filterable
// queries over pair style, status, elements, and symbols.
package store
