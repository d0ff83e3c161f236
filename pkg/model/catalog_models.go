package model

// AttributeKind is the widget hint for an attribute value. It never causes
// value coercion; all values stay strings in the record model.
type AttributeKind string

const (
	KindText    AttributeKind = "text"
	KindNumber  AttributeKind = "number"
	KindBoolean AttributeKind = "boolean"
)

// Canonical article attribute categories.
const (
	CategoryModifier  = "MODIFIER"
	CategoryCondition = "CONDITION"
	CategoryInjury    = "INJURY"
	CategoryOther     = "OTHER"
)

// ArticleAttributeSet describes the catalog-defined article attributes:
// the full name list, the per-category grouping, and per-name kind hints.
type ArticleAttributeSet struct {
	All        []string            `json:"all"`
	Categories map[string][]string `json:"categories"`
	Types      map[string]string   `json:"types"`
}

// DataObjectAttributeSet describes the catalog-defined participant
// attributes: names common to all participant types and names specific to
// one type, plus kind hints.
type DataObjectAttributeSet struct {
	All    []string            `json:"all"`
	Common []string            `json:"common"`
	ByType map[string][]string `json:"by_type"`
	Types  map[string]string   `json:"types"`
}

// Catalog is the external definition of all recognized attribute names,
// their grouping, tooltip text, value kinds, and presets. Loaded once at
// startup and immutable afterwards.
type Catalog struct {
	StorylineAttributes  []string                                `json:"storyline_attributes"`
	ArticleAttributes    ArticleAttributeSet                     `json:"article_attributes"`
	DataObjectTypes      []string                                `json:"data_object_types"`
	DataObjectAttributes DataObjectAttributeSet                  `json:"data_object_attributes"`
	Tooltips             map[string]string                       `json:"tooltips"`
	Presets              map[string]map[string]map[string]string `json:"presets"`
}
