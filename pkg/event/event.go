// Package event defines the structural, JSON-equivalent output of the parser.
package event

import "fmt"

// Kind identifies the structural class of an Event.
type Kind int

const (
	StartObject Kind = iota
	EndObject
	StartArray
	EndArray
	PropertyName
	String
	End
)

func (k Kind) String() string {
	names := map[Kind]string{
		StartObject:  "StartObject",
		EndObject:    "EndObject",
		StartArray:   "StartArray",
		EndArray:     "EndArray",
		PropertyName: "PropertyName",
		String:       "String",
		End:          "End",
	}
	if name, ok := names[k]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%d)", int(k))
}

// Event is a single item of the structural event stream. Value is populated
// only for PropertyName and String.
type Event struct {
	Kind  Kind
	Value string
}

func (e Event) String() string {
	switch e.Kind {
	case PropertyName, String:
		return fmt.Sprintf("%s(%q)", e.Kind, e.Value)
	default:
		return e.Kind.String()
	}
}
