package knob

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindInt
	KindDouble
	KindString
	KindText
	KindBool
	KindTab

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// GroupEnum carries the open/close group behaviour of a tab knob. A
// plain tab is GroupNone; the begin/end variants bracket a collapsible
// group of knobs.
type GroupEnum int

const (
	GroupNone GroupEnum = iota
	GroupBegin
	GroupBeginClosed
	GroupEnd
)

var kindByName = map[string]KindEnum{
	"int":    KindInt,
	"double": KindDouble,
	"string": KindString,
	"text":   KindText,
	"bool":   KindBool,
	"tab":    KindTab,
}

// ParseKind maps the catalog spelling of a kind ("int", "tab", ...) to
// its KindEnum. The second return is false for unknown spellings.
func ParseKind(name string) (KindEnum, bool) {
	k, ok := kindByName[name]
	return k, ok
}
