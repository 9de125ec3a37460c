package trace

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// ColorStop is one [position, colour] entry of a colorscale.
type ColorStop struct {
	Pos   float64
	Color string
}

func UniformColorScale(color string) []ColorStop {
	return []ColorStop{{Pos: 0, Color: color}, {Pos: 1, Color: color}}
}

func (cs ColorStop) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{cs.Pos, cs.Color})
}

func (cs *ColorStop) UnmarshalJSON(d []byte) error {
	var vs []interface{}

	if err := json.Unmarshal(d, &vs); err != nil {
		return err
	}

	return cs.fromSlice(vs)
}

func (cs ColorStop) MarshalYAML() (interface{}, error) {
	return []interface{}{cs.Pos, cs.Color}, nil
}

func (cs *ColorStop) UnmarshalYAML(node *yaml.Node) error {
	var vs []interface{}

	if err := node.Decode(&vs); err != nil {
		return err
	}

	return cs.fromSlice(vs)
}

func (cs *ColorStop) fromSlice(vs []interface{}) (err error) {
	if len(vs) != 2 {
		return fmt.Errorf("%w: want 2 elements, got %d", ErrBadColorStop, len(vs))
	}

	cs.Pos, err = cast.ToFloat64E(vs[0])
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBadColorStop, err)
	}

	cs.Color, err = cast.ToStringE(vs[1])
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBadColorStop, err)
	}

	return nil
}
