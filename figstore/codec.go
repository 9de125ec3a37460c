package figstore

import (
	"encoding/json"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/libplotting/trace"
	"gopkg.in/yaml.v3"
)

type JSONCodec struct {
	MarshalIndent bool
}

func (c JSONCodec) Marshal(fig *trace.Figure) ([]byte, error) {
	if c.MarshalIndent {
		return json.MarshalIndent(fig, "", "  ")
	}

	return json.Marshal(fig)
}

func (JSONCodec) Unmarshal(d []byte) (*trace.Figure, error) {
	var fig trace.Figure

	if err := json.Unmarshal(d, &fig); err != nil {
		return nil, err
	}

	return &fig, nil
}

type YAMLCodec struct{}

func (YAMLCodec) Marshal(fig *trace.Figure) ([]byte, error) {
	return yaml.Marshal(fig)
}

func (YAMLCodec) Unmarshal(d []byte) (*trace.Figure, error) {
	var fig trace.Figure

	if err := yaml.Unmarshal(d, &fig); err != nil {
		return nil, err
	}

	return &fig, nil
}

// Clone deep copies fig through its JSON form.
func Clone(fig *trace.Figure) (*trace.Figure, error) {
	if fig == nil {
		return nil, commerr.ErrInvalidArgument
	}

	d, err := JSONCodec{}.Marshal(fig)
	if err != nil {
		return nil, err
	}

	return JSONCodec{}.Unmarshal(d)
}

func CheckKey(key string) error {
	if key == "" {
		return commerr.ErrInvalidArgument
	}

	return nil
}
