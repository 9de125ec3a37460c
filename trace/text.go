package trace

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Text is either a single label for the whole trace or one label per
// point, encoded as a plain string or an array respectively.
type Text struct {
	Values   []string
	PerPoint bool
}

func SingleText(s string) *Text {
	return &Text{Values: []string{s}}
}

func PointTexts(ss ...string) *Text {
	return &Text{Values: ss, PerPoint: true}
}

func (t Text) String() string {
	if len(t.Values) == 0 {
		return ""
	}

	return t.Values[0]
}

func (t Text) MarshalJSON() ([]byte, error) {
	if t.PerPoint {
		return json.Marshal(t.Values)
	}

	return json.Marshal(t.String())
}

func (t *Text) UnmarshalJSON(d []byte) error {
	var s string

	if err := json.Unmarshal(d, &s); err == nil {
		*t = *SingleText(s)

		return nil
	}

	var ss []string

	if err := json.Unmarshal(d, &ss); err != nil {
		return err
	}

	*t = *PointTexts(ss...)

	return nil
}

func (t Text) MarshalYAML() (interface{}, error) {
	if t.PerPoint {
		return t.Values, nil
	}

	return t.String(), nil
}

func (t *Text) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var s string

		if err := node.Decode(&s); err != nil {
			return err
		}

		*t = *SingleText(s)

		return nil
	}

	var ss []string

	if err := node.Decode(&ss); err != nil {
		return err
	}

	*t = *PointTexts(ss...)

	return nil
}
