// Package schema validates potential record documents against the
// embedded CUE schema.
package schema

import (
	_ "embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
	cuejson "cuelang.org/go/encoding/json"
)

//go:embed schema.cue
var schemaCUE string

// ValidationError is one schema violation, with the CUE position when the
// underlying error carries one.
type ValidationError struct {
	Path    string
	Message string
	Pos     token.Pos
}

func (e *ValidationError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Path, e.Message)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Message)
	}
	return e.Message
}

// Validator validates record documents against the potential-LAMMPS schema.
type Validator struct {
	ctx    *cue.Context
	schema cue.Value
}

// New compiles the embedded schema. Compilation failure means the embedded
// schema itself is broken, so it is returned as a plain error rather than
// validation errors.
func New() (*Validator, error) {
	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("compile record schema: %w", err)
	}
	return &Validator{ctx: ctx, schema: schema}, nil
}

// ValidateJSON checks a JSON-encoded record document against the schema.
// Returns all violations found, or nil when the document conforms.
func (v *Validator) ValidateJSON(data []byte) []error {
	expr, err := cuejson.Extract("record.json", data)
	if err != nil {
		return []error{&ValidationError{Message: fmt.Sprintf("invalid JSON: %v", err)}}
	}

	doc := v.ctx.BuildExpr(expr)
	if err := doc.Err(); err != nil {
		return convertErrors(err)
	}

	unified := v.schema.Unify(doc)
	if err := unified.Validate(cue.Concrete(true), cue.Final()); err != nil {
		return convertErrors(err)
	}
	return nil
}

// convertErrors flattens a CUE error list into position-aware
// ValidationErrors.
func convertErrors(err error) []error {
	var out []error
	for _, e := range errors.Errors(err) {
		format, args := e.Msg()
		out = append(out, &ValidationError{
			Path:    strPath(e.Path()),
			Message: fmt.Sprintf(format, args...),
			Pos:     e.Position(),
		})
	}
	if len(out) == 0 {
		out = append(out, &ValidationError{Message: err.Error()})
	}
	return out
}

func strPath(parts []string) string {
	path := ""
	for i, p := range parts {
		if i > 0 {
			path += "."
		}
		path += p
	}
	return path
}
