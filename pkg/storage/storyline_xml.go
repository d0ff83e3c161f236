// Package storage provides functionality for persisting and retrieving
// storyline editor data. This file implements the storyline XML codec.
package storage

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"sort"
	"time"

	"github.com/lebronisbest/ootp-storyline-generator/pkg/model"
)

// SchemaError reports a structural problem in a storyline file: malformed
// XML or a missing STORYLINES container. It blocks the open; the live
// collection is left untouched.
type SchemaError struct {
	Msg string
	Err error
}

func (e *SchemaError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

// Decode-side shapes. Attribute bags keep every attribute found on the
// element so that names written by newer game versions survive a round
// trip.
type xmlDatabase struct {
	Attrs      []xml.Attr        `xml:",any,attr"`
	Storylines *xmlStorylineList `xml:"STORYLINES"`
}

type xmlStorylineList struct {
	Storylines []xmlStoryline `xml:"STORYLINE"`
}

type xmlStoryline struct {
	Attrs        []xml.Attr      `xml:",any,attr"`
	RequiredData []xmlDataObject `xml:"REQUIRED_DATA>DATA_OBJECT"`
	Articles     []xmlArticle    `xml:"ARTICLES>ARTICLE"`
}

type xmlDataObject struct {
	Attrs []xml.Attr `xml:",any,attr"`
}

type xmlArticle struct {
	Attrs             []xml.Attr `xml:",any,attr"`
	Subject           string     `xml:"SUBJECT"`
	Text              string     `xml:"TEXT"`
	InjuryDescription string     `xml:"INJURY_DESCRIPTION"`
}

// ParseCollection decodes a storyline XML document. Every attribute is
// copied verbatim; absent well-known storyline attributes are defaulted to
// the empty string afterwards. Storylines come back sorted by id.
func ParseCollection(data []byte) (*model.Collection, error) {
	var doc xmlDatabase
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, &SchemaError{Msg: "malformed storyline file", Err: err}
	}
	if doc.Storylines == nil {
		return nil, &SchemaError{Msg: "no STORYLINES section found"}
	}

	collection := &model.Collection{}
	for _, attr := range doc.Attrs {
		if attr.Name.Local == "fileversion" {
			collection.FileVersion = attr.Value
		}
	}

	for _, xs := range doc.Storylines.Storylines {
		s := &model.Storyline{
			Attributes: make(map[string]string, len(xs.Attrs)+len(model.StorylineAttributes)+1),
		}
		for _, attr := range xs.Attrs {
			s.Attributes[attr.Name.Local] = attr.Value
		}
		s.FillDefaults()

		for _, xd := range xs.RequiredData {
			d := &model.DataObject{Attributes: make(map[string]string)}
			for _, attr := range xd.Attrs {
				switch attr.Name.Local {
				case "type":
					d.Type = attr.Value
				case "main_actor":
					d.MainActor = attr.Value == "1"
				default:
					d.Attributes[attr.Name.Local] = attr.Value
				}
			}
			s.RequiredData = append(s.RequiredData, d)
		}

		for _, xa := range xs.Articles {
			a := &model.Article{
				Subject:           xa.Subject,
				Text:              xa.Text,
				InjuryDescription: xa.InjuryDescription,
				Modifiers:         make(map[string]string),
			}
			for _, attr := range xa.Attrs {
				if attr.Name.Local == "id" {
					a.ID = attr.Value
					continue
				}
				a.Modifiers[attr.Name.Local] = attr.Value
			}
			s.Articles = append(s.Articles, a)
		}

		collection.Storylines = append(collection.Storylines, s)
	}

	// Sort by id once at load. Later edits keep insertion order.
	sort.SliceStable(collection.Storylines, func(i, j int) bool {
		return collection.Storylines[i].ID() < collection.Storylines[j].ID()
	})

	return collection, nil
}

// SerializeCollection encodes a collection back to storyline XML: tab
// indentation, a fresh fileversion stamp, and only non-empty attribute
// values. Attribute order is deterministic so repeated saves of an
// unchanged collection produce identical bytes apart from the stamp.
func SerializeCollection(c *model.Collection) ([]byte, error) {
	var buf bytes.Buffer
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "\t")

	if err := enc.EncodeToken(xml.ProcInst{
		Target: "xml",
		Inst:   []byte(`version="1.0" encoding="UTF-8"`),
	}); err != nil {
		return nil, fmt.Errorf("failed to write XML declaration: %w", err)
	}

	root := xml.StartElement{
		Name: xml.Name{Local: "STORYLINE_DATABASE"},
		Attr: []xml.Attr{{
			Name:  xml.Name{Local: "fileversion"},
			Value: "OOTP Developments " + time.Now().Format("2006-01-02 15:04:05"),
		}},
	}
	if err := enc.EncodeToken(root); err != nil {
		return nil, fmt.Errorf("failed to write root element: %w", err)
	}

	list := xml.StartElement{Name: xml.Name{Local: "STORYLINES"}}
	if err := enc.EncodeToken(list); err != nil {
		return nil, fmt.Errorf("failed to write STORYLINES element: %w", err)
	}

	for _, s := range c.Storylines {
		if err := encodeStoryline(enc, s); err != nil {
			return nil, err
		}
	}

	if err := enc.EncodeToken(list.End()); err != nil {
		return nil, fmt.Errorf("failed to close STORYLINES element: %w", err)
	}
	if err := enc.EncodeToken(root.End()); err != nil {
		return nil, fmt.Errorf("failed to close root element: %w", err)
	}
	if err := enc.Flush(); err != nil {
		return nil, fmt.Errorf("failed to flush encoder: %w", err)
	}
	buf.WriteByte('\n')

	return buf.Bytes(), nil
}

// encodeStoryline writes one STORYLINE element with its participants and
// articles.
func encodeStoryline(enc *xml.Encoder, s *model.Storyline) error {
	start := xml.StartElement{
		Name: xml.Name{Local: "STORYLINE"},
		Attr: storylineAttrs(s),
	}
	if err := enc.EncodeToken(start); err != nil {
		return fmt.Errorf("failed to write STORYLINE element: %w", err)
	}

	if len(s.RequiredData) > 0 {
		req := xml.StartElement{Name: xml.Name{Local: "REQUIRED_DATA"}}
		if err := enc.EncodeToken(req); err != nil {
			return fmt.Errorf("failed to write REQUIRED_DATA element: %w", err)
		}
		for _, d := range s.RequiredData {
			obj := xml.StartElement{
				Name: xml.Name{Local: "DATA_OBJECT"},
				Attr: dataObjectAttrs(d),
			}
			if err := enc.EncodeToken(obj); err != nil {
				return fmt.Errorf("failed to write DATA_OBJECT element: %w", err)
			}
			if err := enc.EncodeToken(obj.End()); err != nil {
				return fmt.Errorf("failed to close DATA_OBJECT element: %w", err)
			}
		}
		if err := enc.EncodeToken(req.End()); err != nil {
			return fmt.Errorf("failed to close REQUIRED_DATA element: %w", err)
		}
	}

	if len(s.Articles) > 0 {
		arts := xml.StartElement{Name: xml.Name{Local: "ARTICLES"}}
		if err := enc.EncodeToken(arts); err != nil {
			return fmt.Errorf("failed to write ARTICLES element: %w", err)
		}
		for _, a := range s.Articles {
			if err := encodeArticle(enc, a); err != nil {
				return err
			}
		}
		if err := enc.EncodeToken(arts.End()); err != nil {
			return fmt.Errorf("failed to close ARTICLES element: %w", err)
		}
	}

	if err := enc.EncodeToken(start.End()); err != nil {
		return fmt.Errorf("failed to close STORYLINE element: %w", err)
	}
	return nil
}

// encodeArticle writes one ARTICLE element with its text children.
func encodeArticle(enc *xml.Encoder, a *model.Article) error {
	start := xml.StartElement{
		Name: xml.Name{Local: "ARTICLE"},
		Attr: articleAttrs(a),
	}
	if err := enc.EncodeToken(start); err != nil {
		return fmt.Errorf("failed to write ARTICLE element: %w", err)
	}

	texts := []struct {
		name  string
		value string
	}{
		{"SUBJECT", a.Subject},
		{"TEXT", a.Text},
		{"INJURY_DESCRIPTION", a.InjuryDescription},
	}
	for _, t := range texts {
		if t.value == "" {
			continue
		}
		el := xml.StartElement{Name: xml.Name{Local: t.name}}
		if err := enc.EncodeToken(el); err != nil {
			return fmt.Errorf("failed to write %s element: %w", t.name, err)
		}
		if err := enc.EncodeToken(xml.CharData(t.value)); err != nil {
			return fmt.Errorf("failed to write %s text: %w", t.name, err)
		}
		if err := enc.EncodeToken(el.End()); err != nil {
			return fmt.Errorf("failed to close %s element: %w", t.name, err)
		}
	}

	if err := enc.EncodeToken(start.End()); err != nil {
		return fmt.Errorf("failed to close ARTICLE element: %w", err)
	}
	return nil
}

// storylineAttrs orders attributes as id first, the well-known names in
// canonical order, then any extra names sorted. Empty values are skipped.
func storylineAttrs(s *model.Storyline) []xml.Attr {
	attrs := []xml.Attr{{Name: xml.Name{Local: "id"}, Value: s.ID()}}

	known := make(map[string]bool, len(model.StorylineAttributes)+1)
	known["id"] = true
	for _, name := range model.StorylineAttributes {
		known[name] = true
		if v := s.Attributes[name]; v != "" {
			attrs = append(attrs, xml.Attr{Name: xml.Name{Local: name}, Value: v})
		}
	}

	var extras []string
	for name, v := range s.Attributes {
		if !known[name] && v != "" {
			extras = append(extras, name)
		}
	}
	sort.Strings(extras)
	for _, name := range extras {
		attrs = append(attrs, xml.Attr{Name: xml.Name{Local: name}, Value: s.Attributes[name]})
	}
	return attrs
}

// dataObjectAttrs orders attributes as type, main_actor when set, then the
// rest sorted. Empty values are skipped.
func dataObjectAttrs(d *model.DataObject) []xml.Attr {
	attrs := []xml.Attr{{Name: xml.Name{Local: "type"}, Value: d.Type}}
	if d.MainActor {
		attrs = append(attrs, xml.Attr{Name: xml.Name{Local: "main_actor"}, Value: "1"})
	}
	names := make([]string, 0, len(d.Attributes))
	for name, v := range d.Attributes {
		if v != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	for _, name := range names {
		attrs = append(attrs, xml.Attr{Name: xml.Name{Local: name}, Value: d.Attributes[name]})
	}
	return attrs
}

// articleAttrs orders attributes as id first, then modifiers sorted. Empty
// values are skipped.
func articleAttrs(a *model.Article) []xml.Attr {
	attrs := []xml.Attr{{Name: xml.Name{Local: "id"}, Value: a.ID}}
	names := make([]string, 0, len(a.Modifiers))
	for name, v := range a.Modifiers {
		if v != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	for _, name := range names {
		attrs = append(attrs, xml.Attr{Name: xml.Name{Local: name}, Value: a.Modifiers[name]})
	}
	return attrs
}
