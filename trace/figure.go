package trace

import (
	"encoding/json"
	"strconv"

	"github.com/godruoyi/go-snowflake"
	"gopkg.in/yaml.v3"
)

type Layout struct {
	Title  string   `json:"title,omitempty" yaml:"title,omitempty"`
	Shapes []*Shape `json:"shapes,omitempty" yaml:"shapes,omitempty"`
}

// Figure is a plotly figure: a data list of traces and a layout.
type Figure struct {
	Data   []Trace `json:"data" yaml:"data"`
	Layout Layout  `json:"layout" yaml:"layout"`
}

func NewFigure() *Figure {
	return &Figure{
		Data: make([]Trace, 0),
	}
}

// Add appends traces, giving each one without a uid a fresh id.
func (f *Figure) Add(traces ...Trace) {
	for _, t := range traces {
		if t == nil {
			continue
		}

		if t.TraceUID() == "" {
			t.SetTraceUID(strconv.FormatUint(snowflake.ID(), 10))
		}

		f.Data = append(f.Data, t)
	}
}

func (f *Figure) AddShapes(shapes ...*Shape) {
	for _, shape := range shapes {
		if shape != nil {
			f.Layout.Shapes = append(f.Layout.Shapes, shape)
		}
	}
}

type traceHead struct {
	Type string `json:"type" yaml:"type"`
}

func (f *Figure) UnmarshalJSON(d []byte) error {
	var aux struct {
		Data   []json.RawMessage `json:"data"`
		Layout Layout            `json:"layout"`
	}

	if err := json.Unmarshal(d, &aux); err != nil {
		return err
	}

	data := make([]Trace, 0, len(aux.Data))

	for _, raw := range aux.Data {
		var head traceHead

		if err := json.Unmarshal(raw, &head); err != nil {
			return err
		}

		t, err := newTrace(head.Type)
		if err != nil {
			return err
		}

		if err = json.Unmarshal(raw, t); err != nil {
			return err
		}

		data = append(data, t)
	}

	f.Data = data
	f.Layout = aux.Layout

	return nil
}

func (f *Figure) UnmarshalYAML(node *yaml.Node) error {
	var aux struct {
		Data   []yaml.Node `yaml:"data"`
		Layout Layout      `yaml:"layout"`
	}

	if err := node.Decode(&aux); err != nil {
		return err
	}

	data := make([]Trace, 0, len(aux.Data))

	for idx := range aux.Data {
		var head traceHead

		if err := aux.Data[idx].Decode(&head); err != nil {
			return err
		}

		t, err := newTrace(head.Type)
		if err != nil {
			return err
		}

		if err = aux.Data[idx].Decode(t); err != nil {
			return err
		}

		data = append(data, t)
	}

	f.Data = data
	f.Layout = aux.Layout

	return nil
}
