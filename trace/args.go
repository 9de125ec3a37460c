package trace

import (
	"github.com/spf13/cast"
)

// The *FromMap helpers accept loose option maps (e.g. decoded from a
// config file) and reject keys the structured form does not know.

func LineFromMap(m map[string]interface{}) (line Line, err error) {
	for k, v := range m {
		switch k {
		case "color":
			line.Color, err = cast.ToStringE(v)
		case "width":
			line.Width, err = cast.ToFloat64E(v)
		case "dash":
			line.Dash, err = cast.ToStringE(v)
		default:
			err = unknownOption("line", k)
		}

		if err != nil {
			return
		}
	}

	return
}

func MarkerFromMap(m map[string]interface{}) (marker Marker, err error) {
	for k, v := range m {
		switch k {
		case "color":
			marker.Color, err = cast.ToStringE(v)
		case "size":
			marker.Size, err = cast.ToFloat64E(v)
		case "symbol":
			marker.Symbol, err = cast.ToStringE(v)
		case "opacity":
			marker.Opacity, err = cast.ToFloat64E(v)
		default:
			err = unknownOption("marker", k)
		}

		if err != nil {
			return
		}
	}

	return
}

func FillFromMap(m map[string]interface{}) (fill Fill, err error) {
	for k, v := range m {
		switch k {
		case "fill":
			fill.Fill, err = cast.ToStringE(v)
		case "fillcolor":
			fill.FillColor, err = cast.ToStringE(v)
		default:
			err = unknownOption("fill", k)
		}

		if err != nil {
			return
		}
	}

	return
}

func LightingFromMap(m map[string]interface{}) (lighting Lighting, err error) {
	for k, v := range m {
		switch k {
		case "ambient":
			lighting.Ambient, err = cast.ToFloat64E(v)
		case "roughness":
			lighting.Roughness, err = cast.ToFloat64E(v)
		case "diffuse":
			lighting.Diffuse, err = cast.ToFloat64E(v)
		case "specular":
			lighting.Specular, err = cast.ToFloat64E(v)
		case "fresnel":
			lighting.Fresnel, err = cast.ToFloat64E(v)
		default:
			err = unknownOption("lighting", k)
		}

		if err != nil {
			return
		}
	}

	return
}
