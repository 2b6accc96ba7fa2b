package record

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/potlib/potrec/internal/model"
)

// Artifact describes a parameter file belonging to an implementation:
// its filename, an optional short label, and where it was downloaded from.
type Artifact struct {
	Filename string
	Label    string
	URL      string
}

// Parameter is a named scalar setting of an implementation.
type Parameter struct {
	Name  string
	Value float64
	Unit  string
}

// WebLink points at supplementary material for an implementation.
type WebLink struct {
	URL      string
	Label    string
	LinkText string
}

// Implementation is the metadata record for one concrete realization of a
// potential: its type, identity, lifecycle status, and attachments.
type Implementation struct {
	Type   string
	Key    string // record UUID
	ID     string
	Status string
	Date   time.Time
	Notes  string

	Artifacts  []Artifact
	Parameters []Parameter
	WebLinks   []WebLink
}

// NewImplementation creates an implementation record with a fresh UUID key,
// active status, and today's date.
func NewImplementation() *Implementation {
	return &Implementation{
		Key:    uuid.NewString(),
		Status: StatusActive,
		Date:   time.Now().UTC().Truncate(24 * time.Hour),
	}
}

const dateLayout = "2006-01-02"

// BuildModel renders the implementation as a document tree rooted at
// "implementation".
func (imp *Implementation) BuildModel() *model.Map {
	m := model.NewMap()
	m.Set("key", model.String(imp.Key))
	if imp.ID != "" {
		m.Set("id", model.String(imp.ID))
	}
	m.Set("status", model.String(imp.Status))
	m.Set("date", model.String(imp.Date.Format(dateLayout)))
	if imp.Type != "" {
		m.Set("type", model.String(imp.Type))
	}
	if imp.Notes != "" {
		m.Set("notes", model.MapOf(model.P("text", model.String(imp.Notes))))
	}
	for _, art := range imp.Artifacts {
		m.Append("artifact", art.buildEntry())
	}
	for _, par := range imp.Parameters {
		entry := model.NewMap()
		entry.Set("name", model.String(par.Name))
		entry.Set("value", model.Float(par.Value))
		if par.Unit != "" {
			entry.Set("unit", model.String(par.Unit))
		}
		m.Append("parameter", entry)
	}
	for _, link := range imp.WebLinks {
		m.Append("web-link", link.buildEntry())
	}

	doc := model.NewMap()
	doc.Set("implementation", m)
	return doc
}

// LoadImplementation parses an implementation document tree.
func LoadImplementation(doc *model.Map) (*Implementation, error) {
	m := doc.GetMap("implementation")
	if m == nil {
		return nil, fmt.Errorf("document has no implementation root")
	}

	imp := &Implementation{
		Type:   m.GetString("type"),
		Key:    m.GetString("key"),
		ID:     m.GetString("id"),
		Status: StatusActive,
	}
	if s := m.GetString("status"); s != "" {
		imp.Status = s
	}
	if s := m.GetString("date"); s != "" {
		d, err := time.Parse(dateLayout, s)
		if err != nil {
			return nil, fmt.Errorf("implementation date: %w", err)
		}
		imp.Date = d
	}
	if notes := m.GetMap("notes"); notes != nil {
		imp.Notes = notes.GetString("text")
	}

	for i, v := range m.AsList("artifact") {
		entry, ok := v.(*model.Map)
		if !ok {
			return nil, fmt.Errorf("artifact[%d]: expected object, got %T", i, v)
		}
		art, err := loadArtifactEntry(entry)
		if err != nil {
			return nil, fmt.Errorf("artifact[%d]: %w", i, err)
		}
		imp.Artifacts = append(imp.Artifacts, art)
	}

	for i, v := range m.AsList("parameter") {
		entry, ok := v.(*model.Map)
		if !ok {
			return nil, fmt.Errorf("parameter[%d]: expected object, got %T", i, v)
		}
		par := Parameter{
			Name: entry.GetString("name"),
			Unit: entry.GetString("unit"),
		}
		par.Value, _ = entry.GetFloat("value")
		imp.Parameters = append(imp.Parameters, par)
	}

	for i, v := range m.AsList("web-link") {
		entry, ok := v.(*model.Map)
		if !ok {
			return nil, fmt.Errorf("web-link[%d]: expected object, got %T", i, v)
		}
		imp.WebLinks = append(imp.WebLinks, loadWebLinkEntry(entry))
	}

	return imp, nil
}

// buildEntry renders an artifact as the web-link entry used inside both
// implementation and potential-LAMMPS documents.
func (a Artifact) buildEntry() *model.Map {
	link := model.NewMap()
	if a.URL != "" {
		link.Set("URL", model.String(a.URL))
	}
	if a.Label != "" {
		link.Set("label", model.String(a.Label))
	}
	if a.Filename != "" {
		link.Set("link-text", model.String(a.Filename))
	}
	entry := model.NewMap()
	entry.Set("web-link", link)
	return entry
}

func loadArtifactEntry(entry *model.Map) (Artifact, error) {
	link := entry.GetMap("web-link")
	if link == nil {
		return Artifact{}, fmt.Errorf("artifact entry has no web-link")
	}
	return Artifact{
		URL:      link.GetString("URL"),
		Label:    link.GetString("label"),
		Filename: link.GetString("link-text"),
	}, nil
}

func (w WebLink) buildEntry() *model.Map {
	link := model.NewMap()
	if w.URL != "" {
		link.Set("URL", model.String(w.URL))
	}
	if w.Label != "" {
		link.Set("label", model.String(w.Label))
	}
	if w.LinkText != "" {
		link.Set("link-text", model.String(w.LinkText))
	}
	return link
}

func loadWebLinkEntry(entry *model.Map) WebLink {
	return WebLink{
		URL:      entry.GetString("URL"),
		Label:    entry.GetString("label"),
		LinkText: entry.GetString("link-text"),
	}
}
