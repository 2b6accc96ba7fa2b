// Package record defines potential records: structured documents describing
// LAMMPS pair-potential configurations (potential-LAMMPS documents), plus
// the implementation metadata records that accompany them.
//
// A Record is constructed either directly or through one of the builders in
// internal/builder, rendered to a document tree with BuildModel, and to a
// simulation-input fragment with PairInfo.
package record
