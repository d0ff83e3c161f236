// Package model defines the data structures used throughout the storyline editor.
package model

// StorylineAttributes lists the well-known scalar attributes of a storyline
// element, excluding id. Booleans are stored as the literal string "1" when
// set and as the empty string when unset; numeric values stay strings too,
// since the file format and the editing surface treat everything as optional
// text.
var StorylineAttributes = []string{
	"random_frequency",
	"league_year_min",
	"league_year_max",
	"only_in_season",
	"only_in_offseason",
	"only_in_spring",
	"is_minor_league",
	"storyline_happens_only_once",
	"min_usage_interval_days",
	"trigger_events",
}

// Storyline represents one storyline record: its scalar attributes, the
// participant requirements that gate it, and the articles it produces.
// Attributes always contains the "id" key and every name in
// StorylineAttributes; an unset attribute is an empty string, never a
// missing key. Attributes not in the well-known list are kept verbatim so
// that files written by newer game versions survive a round trip.
type Storyline struct {
	Attributes   map[string]string
	RequiredData []*DataObject
	Articles     []*Article
}

// NewStoryline creates a storyline with all well-known attributes present
// and empty.
func NewStoryline(id string) *Storyline {
	s := &Storyline{
		Attributes: map[string]string{"id": id},
	}
	for _, name := range StorylineAttributes {
		s.Attributes[name] = ""
	}
	return s
}

// ID returns the storyline's id attribute.
func (s *Storyline) ID() string {
	return s.Attributes["id"]
}

// FillDefaults adds any missing well-known attribute as an empty string.
func (s *Storyline) FillDefaults() {
	if s.Attributes == nil {
		s.Attributes = make(map[string]string)
	}
	if _, ok := s.Attributes["id"]; !ok {
		s.Attributes["id"] = ""
	}
	for _, name := range StorylineAttributes {
		if _, ok := s.Attributes[name]; !ok {
			s.Attributes[name] = ""
		}
	}
}

// DataObject represents one participant requirement of a storyline: the
// kind of game entity that must exist for the storyline to fire, plus any
// attribute conditions on it. Only non-empty attribute values are persisted.
type DataObject struct {
	Type       string
	MainActor  bool
	Attributes map[string]string
}

// Article represents one narrative unit of a storyline. Modifiers is a
// sparse mapping of catalog-defined effect attributes; only non-empty
// entries are persisted.
type Article struct {
	ID                string
	Subject           string
	Text              string
	InjuryDescription string
	Modifiers         map[string]string
}

// Complete reports whether the article carries any actual content. An
// incomplete article is status-reported, not rejected.
func (a *Article) Complete() bool {
	return a.Subject != "" || a.Text != "" || len(a.Modifiers) > 0
}

// Collection holds the full set of storyline records loaded from one file.
// Storylines are sorted by id after a load; edits do not re-sort.
type Collection struct {
	FilePath    string
	FileVersion string
	Storylines  []*Storyline
}
