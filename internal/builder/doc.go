// Package builder constructs potential records from a small set of named
// parameters. Each builder variant maps its inputs onto one of the fixed
// pair_coeff line layouts: direct coefficient terms per symbol pair
// (PairBuilder), a single parameter file covering all symbols
// (ParamFileBuilder), or one parameter file per symbol (EAMBuilder).
package builder
