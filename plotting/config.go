package plotting

import (
	"os"
	"time"

	"github.com/sgostarter/libplotting/trace"
	"gopkg.in/yaml.v3"
)

type Config struct {
	GridLine trace.Line `yaml:"gridLine" json:"gridLine"`

	ArrowColor           string  `yaml:"arrowColor" json:"arrowColor"`
	ArrowOpacity         float64 `yaml:"arrowOpacity" json:"arrowOpacity"`
	ArrowPoints          int     `yaml:"arrowPoints" json:"arrowPoints"`
	ArrowHeadLengthRatio float64 `yaml:"arrowHeadLengthRatio" json:"arrowHeadLengthRatio"`
	ArrowHeadRadiusRatio float64 `yaml:"arrowHeadRadiusRatio" json:"arrowHeadRadiusRatio"`
	ArrowStemWidthRatio  float64 `yaml:"arrowStemWidthRatio" json:"arrowStemWidthRatio"`

	SphereColor    string         `yaml:"sphereColor" json:"sphereColor"`
	SphereSegments int            `yaml:"sphereSegments" json:"sphereSegments"`
	SphereLighting trace.Lighting `yaml:"sphereLighting" json:"sphereLighting"`

	CircleSamples int        `yaml:"circleSamples" json:"circleSamples"`
	CircleFill    trace.Fill `yaml:"circleFill" json:"circleFill"`

	SampleCacheExpiration time.Duration `yaml:"sampleCacheExpiration" json:"sampleCacheExpiration"`
}

func DefaultConfig() *Config {
	return &Config{
		GridLine: trace.Line{
			Color: "silver",
			Width: 1,
		},
		ArrowColor:           "blue",
		ArrowOpacity:         0.5,
		ArrowPoints:          100,
		ArrowHeadLengthRatio: 0.1,
		ArrowHeadRadiusRatio: 0.05,
		ArrowStemWidthRatio:  10,
		SphereColor:          "blue",
		SphereSegments:       50,
		SphereLighting: trace.Lighting{
			Ambient:   0.85,
			Roughness: 0.4,
			Diffuse:   0.2,
			Specular:  0.10,
		},
		CircleSamples: 100,
		CircleFill: trace.Fill{
			Fill: trace.FillToZeroX,
		},
		SampleCacheExpiration: 10 * time.Minute,
	}
}

// LoadConfig reads a yaml config file; fields it leaves unset keep their
// defaults.
func LoadConfig(file string) (*Config, error) {
	d, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()

	err = yaml.Unmarshal(d, cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) fillDefaults() {
	def := DefaultConfig()

	cfg.GridLine = def.GridLine.Merge(cfg.GridLine)

	if cfg.ArrowColor == "" {
		cfg.ArrowColor = def.ArrowColor
	}

	if cfg.ArrowOpacity <= 0 {
		cfg.ArrowOpacity = def.ArrowOpacity
	}

	if cfg.ArrowPoints < 3 {
		cfg.ArrowPoints = def.ArrowPoints
	}

	if cfg.ArrowHeadLengthRatio <= 0 {
		cfg.ArrowHeadLengthRatio = def.ArrowHeadLengthRatio
	}

	if cfg.ArrowHeadRadiusRatio <= 0 {
		cfg.ArrowHeadRadiusRatio = def.ArrowHeadRadiusRatio
	}

	if cfg.ArrowStemWidthRatio <= 0 {
		cfg.ArrowStemWidthRatio = def.ArrowStemWidthRatio
	}

	if cfg.SphereColor == "" {
		cfg.SphereColor = def.SphereColor
	}

	if cfg.SphereSegments < 2 {
		cfg.SphereSegments = def.SphereSegments
	}

	if cfg.SphereLighting == (trace.Lighting{}) {
		cfg.SphereLighting = def.SphereLighting
	}

	if cfg.CircleSamples < 2 {
		cfg.CircleSamples = def.CircleSamples
	}

	cfg.CircleFill = def.CircleFill.Merge(cfg.CircleFill)

	if cfg.SampleCacheExpiration <= 0 {
		cfg.SampleCacheExpiration = def.SampleCacheExpiration
	}
}
