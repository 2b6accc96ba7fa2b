// Package model provides the ordered document trees that potential records
// are built from and rendered to.
//
// A document is a tree of Value nodes. Unlike encoding/json's map-based
// representation, Map preserves key insertion order: the shape and field
// order of a potential-LAMMPS document are fixed once built, and the
// rendered output must reproduce them.
package model
