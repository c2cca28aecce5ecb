// Package knob models host-owned knobs: named, ordered attributes that
// live on a node. A knob's identity is the implementation pointer, never
// its name; names are mutable and the host tolerates in-memory
// duplicates.
package knob

// Knob is the capability surface the wrangler needs from a host-owned
// knob: a mutable name, a display label and a kind classification.
type Knob interface {
	Name() string
	SetName(name string)
	Label() string
	Kind() KindEnum
}

// Simple is the basic Knob implementation, used by the in-memory host
// node and by anything that needs knobs without a live host session.
type Simple struct {
	name  string
	label string
	kind  KindEnum
	group GroupEnum

	// Value is free-form; knob values are never validated or interpreted
	// by the wrangler.
	Value any
}

func New(kind KindEnum, name, label string) *Simple {
	return &Simple{name: name, label: label, kind: kind}
}

func NewInt(name, label string) *Simple    { return New(KindInt, name, label) }
func NewDouble(name, label string) *Simple { return New(KindDouble, name, label) }
func NewString(name, label string) *Simple { return New(KindString, name, label) }
func NewText(name, label string) *Simple   { return New(KindText, name, label) }
func NewBool(name, label string) *Simple   { return New(KindBool, name, label) }

// NewTab returns a plain tab knob with no group behaviour.
func NewTab(name, label string) *Simple { return New(KindTab, name, label) }

// NewTabGroup returns a tab knob carrying the given group begin/end
// behaviour.
func NewTabGroup(name, label string, group GroupEnum) *Simple {
	k := New(KindTab, name, label)
	k.group = group

	return k
}

func (s *Simple) Name() string        { return s.name }
func (s *Simple) SetName(name string) { s.name = name }
func (s *Simple) Label() string       { return s.label }
func (s *Simple) Kind() KindEnum      { return s.kind }
func (s *Simple) Group() GroupEnum    { return s.group }
