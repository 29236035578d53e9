package models

import (
	"encoding/json"
	"sort"
)

// Template is a reusable slide skeleton: default style, animations and
// layout hints that slides opt into via their template_id.
type Template struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Style       *Style          `json:"style,omitempty"`
	Animations  []TextAnimation `json:"animations,omitempty"`
	Transition  *Transition     `json:"transition,omitempty"`
	Effects     []Effect        `json:"effects,omitempty"`
	ShowTitle   bool            `json:"show_title"`
	ShowBody    bool            `json:"show_body"`
}

// NewTemplate creates a template that shows both text elements.
func NewTemplate(id, name string) *Template {
	return &Template{ID: id, Name: name, ShowTitle: true, ShowBody: true}
}

// UnmarshalJSON keeps show_title/show_body at their default (true) when
// decoding documents written before those fields existed.
func (t *Template) UnmarshalJSON(data []byte) error {
	type plain Template
	tmp := plain{ShowTitle: true, ShowBody: true}
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	*t = Template(tmp)
	return nil
}

// Library is the session's collection of templates, keyed by id.
type Library struct {
	Templates map[string]*Template `json:"templates"`
}

// NewLibrary returns an empty template library.
func NewLibrary() *Library {
	return &Library{Templates: make(map[string]*Template)}
}

// Get looks up a template by id; nil means not found.
func (l *Library) Get(id string) *Template {
	if l == nil || l.Templates == nil {
		return nil
	}
	return l.Templates[id]
}

// Add inserts or replaces a template.
func (l *Library) Add(t *Template) *Template {
	if l.Templates == nil {
		l.Templates = make(map[string]*Template)
	}
	l.Templates[t.ID] = t
	return t
}

// Remove deletes a template by id and reports whether it existed.
func (l *Library) Remove(id string) bool {
	if l.Templates == nil {
		return false
	}
	if _, ok := l.Templates[id]; !ok {
		return false
	}
	delete(l.Templates, id)
	return true
}

// TemplateInfo is the listing projection of a template.
type TemplateInfo struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	HasStyle       bool   `json:"has_style"`
	AnimationCount int    `json:"animation_count"`
	ShowTitle      bool   `json:"show_title"`
	ShowBody       bool   `json:"show_body"`
}

// List returns template infos sorted by id.
func (l *Library) List() []TemplateInfo {
	out := make([]TemplateInfo, 0, len(l.Templates))
	for _, t := range l.Templates {
		out = append(out, TemplateInfo{
			ID:             t.ID,
			Name:           t.Name,
			Description:    t.Description,
			HasStyle:       t.Style != nil,
			AnimationCount: len(t.Animations),
			ShowTitle:      t.ShowTitle,
			ShowBody:       t.ShowBody,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
