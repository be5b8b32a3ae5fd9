// Package entities contains core business entities.
package entities

import (
	"bytes"
	"encoding/json"
)

// StateFieldName is the custom field that carries the workflow state.
const StateFieldName = "State"

// Issue is a tracker issue reduced to the fields the statistics need.
type Issue struct {
	ID           string        `json:"id"`
	IDReadable   string        `json:"idReadable,omitempty"`
	State        *StateValue   `json:"state,omitempty"`
	CustomFields []CustomField `json:"customFields,omitempty"`
}

// CustomField is a named issue attribute. Only the State field is consumed.
type CustomField struct {
	Name  string      `json:"name"`
	Value *StateValue `json:"value,omitempty"`
}

// StateKind tells which shape a StateValue was decoded from.
type StateKind int

const (
	// StateKindNone means the value was absent or null.
	StateKindNone StateKind = iota
	// StateKindText is a bare JSON string.
	StateKindText
	// StateKindObject is a JSON object with name-like members.
	StateKindObject
	// StateKindOther covers numbers, booleans and arrays.
	StateKindOther
)

// StateValue is the decoded form of a state that may arrive either as a
// string or as an object with several candidate name fields.
type StateValue struct {
	Kind          StateKind
	Text          string
	Name          string
	Presentation  string
	LocalizedName string
}

// TextState builds a string-shaped state.
func TextState(s string) *StateValue {
	return &StateValue{Kind: StateKindText, Text: s}
}

// NamedState builds an object-shaped state with only a name.
func NamedState(name string) *StateValue {
	return &StateValue{Kind: StateKindObject, Name: name}
}

// IsPresent reports whether the value would count as set on the wire:
// a non-empty string or any object.
func (v *StateValue) IsPresent() bool {
	if v == nil {
		return false
	}
	switch v.Kind {
	case StateKindText:
		return v.Text != ""
	case StateKindObject:
		return true
	default:
		return false
	}
}

// UnmarshalJSON implements json.Unmarshaler. Shapes that carry no state are
// kept as StateKindOther instead of failing the whole issue list.
func (v *StateValue) UnmarshalJSON(data []byte) error {
	*v = StateValue{}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		v.Kind = StateKindText
		v.Text = s
	case '{':
		var obj struct {
			Name          *string `json:"name"`
			Presentation  *string `json:"presentation"`
			LocalizedName *string `json:"localizedName"`
		}
		if err := json.Unmarshal(trimmed, &obj); err != nil {
			// name-like members of an unexpected type
			v.Kind = StateKindObject
			return nil
		}
		v.Kind = StateKindObject
		v.Name = deref(obj.Name)
		v.Presentation = deref(obj.Presentation)
		v.LocalizedName = deref(obj.LocalizedName)
	default:
		v.Kind = StateKindOther
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (v StateValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case StateKindText:
		return json.Marshal(v.Text)
	case StateKindObject:
		return json.Marshal(struct {
			Name          string `json:"name,omitempty"`
			Presentation  string `json:"presentation,omitempty"`
			LocalizedName string `json:"localizedName,omitempty"`
		}{v.Name, v.Presentation, v.LocalizedName})
	default:
		return []byte("null"), nil
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// IssueQuery selects issues from the tracker.
type IssueQuery struct {
	Query  string
	Fields string
}

// Project is a tracker project used to scope issue queries.
type Project struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
}

// QueryKey returns the identifier used in "project: {...}" issue queries.
func (p Project) QueryKey() string {
	if p.ShortName != "" {
		return p.ShortName
	}
	return p.ID
}

// Label returns a human readable project identifier.
func (p Project) Label() string {
	switch {
	case p.ShortName != "":
		return p.ShortName
	case p.Name != "":
		return p.Name
	default:
		return p.ID
	}
}
