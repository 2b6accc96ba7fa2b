package record

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/potlib/potrec/internal/model"
)

// Statuses a potential record can carry. Only non-active statuses are
// serialized; an absent status reads back as active.
const (
	StatusActive     = "active"
	StatusSuperseded = "superseded"
	StatusRetracted  = "retracted"
)

// ErrNoMass is returned when a record atom has no explicit mass and its
// element is not in the standard mass table.
var ErrNoMass = errors.New("no mass defined")

// Atom describes one particle model of a potential.
type Atom struct {
	Symbol  string  // model symbol, defaults to Element
	Element string  // element symbol, optional for fictional particles
	Mass    float64 // explicit mass, 0 means resolve from Element
	Charge  float64 // fixed charge, serialized only when nonzero
}

// CoeffLine is one pair_coeff line: an optional symbol pair plus terms.
// A line without symbols applies universally (pair_coeff * *).
type CoeffLine struct {
	Symbols []string
	Terms   []Term
}

// CommandLine is an extra LAMMPS command emitted after the coefficient
// lines (e.g. pair_modify or mixing directives).
type CommandLine struct {
	Terms []Term
}

// Record is a potential-LAMMPS record: the full description needed to
// generate both the document form and the simulation-input fragment.
type Record struct {
	Key    string // record UUID
	ID     string // human-readable record identifier
	PotKey string // UUID of the parent potential listing
	PotID  string // identifier of the parent potential listing
	Status string

	Units     string
	AtomStyle string
	Comments  string
	Dois      []string

	// AllSymbols forces every symbol onto each coefficient line for pair
	// styles that require the full symbol list.
	AllSymbols bool

	Atoms []Atom

	PairStyle      string
	PairStyleTerms []Term
	PairCoeffs     []CoeffLine
	Commands       []CommandLine

	Artifacts []Artifact

	// PotDir is the directory holding the record's parameter files.
	// It affects rendering only and is never serialized.
	PotDir string
}

// New creates a record with a fresh UUID key and the default unit and
// atom-style settings used by the original tooling.
func New() *Record {
	return &Record{
		Key:       uuid.NewString(),
		Status:    StatusActive,
		Units:     "metal",
		AtomStyle: "atomic",
	}
}

// Symbols returns the model symbols in atom order, falling back to element
// symbols where no model symbol was assigned.
func (r *Record) Symbols() []string {
	symbols := make([]string, len(r.Atoms))
	for i, a := range r.Atoms {
		if a.Symbol != "" {
			symbols[i] = a.Symbol
		} else {
			symbols[i] = a.Element
		}
	}
	return symbols
}

// Elements returns the element symbols in atom order.
func (r *Record) Elements() []string {
	elements := make([]string, len(r.Atoms))
	for i, a := range r.Atoms {
		elements[i] = a.Element
	}
	return elements
}

// Masses resolves the mass of every atom, preferring explicit masses and
// falling back to the standard table by element.
func (r *Record) Masses() ([]float64, error) {
	masses := make([]float64, len(r.Atoms))
	for i, a := range r.Atoms {
		if a.Mass != 0 {
			masses[i] = a.Mass
			continue
		}
		m, ok := StandardMass(a.Element)
		if !ok {
			return nil, fmt.Errorf("atom %s: %w", r.Symbols()[i], ErrNoMass)
		}
		masses[i] = m
	}
	return masses, nil
}

// BuildModel renders the record as a potential-LAMMPS document tree.
// The field order is fixed: identity, settings, atoms, pair style,
// coefficient lines, extra commands.
func (r *Record) BuildModel() (*model.Map, error) {
	pot := model.NewMap()
	pot.Set("key", model.String(r.Key))
	if r.ID != "" {
		pot.Set("id", model.String(r.ID))
	}

	parent := model.NewMap()
	if r.PotKey != "" {
		parent.Set("key", model.String(r.PotKey))
	}
	if r.PotID != "" {
		parent.Set("id", model.String(r.PotID))
	}
	for _, doi := range r.Dois {
		parent.Append("doi", model.String(doi))
	}
	if parent.Len() > 0 {
		pot.Set("potential", parent)
	}

	if r.Comments != "" {
		pot.Set("comments", model.String(r.Comments))
	}
	if r.Status != "" && r.Status != StatusActive {
		pot.Set("status", model.String(r.Status))
	}

	pot.Set("units", model.String(r.Units))
	pot.Set("atom_style", model.String(r.AtomStyle))
	if r.AllSymbols {
		pot.Set("allsymbols", model.Bool(true))
	}

	for i, a := range r.Atoms {
		if a.Symbol == "" && a.Element == "" {
			return nil, fmt.Errorf("atom %d: neither symbol nor element set", i)
		}
		entry := model.NewMap()
		if a.Symbol != "" {
			entry.Set("symbol", model.String(a.Symbol))
		}
		if a.Element != "" {
			entry.Set("element", model.String(a.Element))
		}
		if a.Mass != 0 {
			entry.Set("mass", model.Float(a.Mass))
		}
		if a.Charge != 0 {
			entry.Set("charge", model.Float(a.Charge))
		}
		pot.Append("atom", entry)
	}

	if r.PairStyle == "" {
		return nil, fmt.Errorf("pair style not set")
	}
	style := model.NewMap()
	style.Set("type", model.String(r.PairStyle))
	buildTerms(style, r.PairStyleTerms)
	pot.Set("pair_style", style)

	for _, line := range r.PairCoeffs {
		entry := model.NewMap()
		if len(line.Symbols) > 0 {
			interaction := model.NewMap()
			for _, s := range line.Symbols {
				interaction.Append("symbol", model.String(s))
			}
			entry.Set("interaction", interaction)
		}
		buildTerms(entry, line.Terms)
		pot.Append("pair_coeff", entry)
	}

	for _, cmd := range r.Commands {
		entry := model.NewMap()
		buildTerms(entry, cmd.Terms)
		pot.Append("command", entry)
	}

	for _, art := range r.Artifacts {
		pot.Append("artifact", art.buildEntry())
	}

	doc := model.NewMap()
	doc.Set("potential-LAMMPS", pot)
	return doc, nil
}

// Load parses a potential-LAMMPS document tree into a record.
func Load(doc *model.Map) (*Record, error) {
	pot := doc.GetMap("potential-LAMMPS")
	if pot == nil {
		return nil, fmt.Errorf("document has no potential-LAMMPS root")
	}

	r := &Record{
		Key:       pot.GetString("key"),
		ID:        pot.GetString("id"),
		Status:    StatusActive,
		Units:     pot.GetString("units"),
		AtomStyle: pot.GetString("atom_style"),
		Comments:  pot.GetString("comments"),
	}
	if s := pot.GetString("status"); s != "" {
		r.Status = s
	}
	if v, ok := pot.Get("allsymbols"); ok {
		b, _ := v.(model.Bool)
		r.AllSymbols = bool(b)
	}

	if parent := pot.GetMap("potential"); parent != nil {
		r.PotKey = parent.GetString("key")
		r.PotID = parent.GetString("id")
		for _, v := range parent.AsList("doi") {
			if s, ok := v.(model.String); ok {
				r.Dois = append(r.Dois, string(s))
			}
		}
	}

	for i, v := range pot.AsList("atom") {
		entry, ok := v.(*model.Map)
		if !ok {
			return nil, fmt.Errorf("atom[%d]: expected object, got %T", i, v)
		}
		a := Atom{
			Symbol:  entry.GetString("symbol"),
			Element: entry.GetString("element"),
		}
		a.Mass, _ = entry.GetFloat("mass")
		a.Charge, _ = entry.GetFloat("charge")
		r.Atoms = append(r.Atoms, a)
	}

	style := pot.GetMap("pair_style")
	if style == nil {
		return nil, fmt.Errorf("document has no pair_style")
	}
	r.PairStyle = style.GetString("type")
	terms, err := loadTerms(style)
	if err != nil {
		return nil, fmt.Errorf("pair_style: %w", err)
	}
	r.PairStyleTerms = terms

	for i, v := range pot.AsList("pair_coeff") {
		entry, ok := v.(*model.Map)
		if !ok {
			return nil, fmt.Errorf("pair_coeff[%d]: expected object, got %T", i, v)
		}
		var line CoeffLine
		if interaction := entry.GetMap("interaction"); interaction != nil {
			for _, sv := range interaction.AsList("symbol") {
				if s, ok := sv.(model.String); ok {
					line.Symbols = append(line.Symbols, string(s))
				}
			}
		}
		line.Terms, err = loadTerms(entry)
		if err != nil {
			return nil, fmt.Errorf("pair_coeff[%d]: %w", i, err)
		}
		r.PairCoeffs = append(r.PairCoeffs, line)
	}

	for i, v := range pot.AsList("command") {
		entry, ok := v.(*model.Map)
		if !ok {
			return nil, fmt.Errorf("command[%d]: expected object, got %T", i, v)
		}
		terms, err := loadTerms(entry)
		if err != nil {
			return nil, fmt.Errorf("command[%d]: %w", i, err)
		}
		r.Commands = append(r.Commands, CommandLine{Terms: terms})
	}

	for i, v := range pot.AsList("artifact") {
		entry, ok := v.(*model.Map)
		if !ok {
			return nil, fmt.Errorf("artifact[%d]: expected object, got %T", i, v)
		}
		art, err := loadArtifactEntry(entry)
		if err != nil {
			return nil, fmt.Errorf("artifact[%d]: %w", i, err)
		}
		r.Artifacts = append(r.Artifacts, art)
	}

	return r, nil
}

// LoadJSON parses a JSON-encoded potential-LAMMPS document into a record.
func LoadJSON(data []byte) (*Record, error) {
	v, err := model.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("parse record document: %w", err)
	}
	doc, ok := v.(*model.Map)
	if !ok {
		return nil, fmt.Errorf("record document is not an object")
	}
	return Load(doc)
}

// Digest computes the content digest of the record's document form.
func (r *Record) Digest() (string, error) {
	doc, err := r.BuildModel()
	if err != nil {
		return "", err
	}
	return model.Digest(model.DomainRecord, doc)
}
