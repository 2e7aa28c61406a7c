package sim

// Resources is the environment's resource pool. The pool is read-only in
// the current scope; only ambient light is consumed, via LightLevel.
type Resources struct {
	Organic  float32 `json:"organic"`
	Minerals float32 `json:"minerals"`
	Light    float32 `json:"light"`
}

// Environment holds the ambient conditions of the simulation. Conditions
// are clamped to [0, 1] at construction and immutable afterwards; the
// resource pool is stored as given.
type Environment struct {
	Temperature float32   `json:"temperature"`
	LightLevel  float32   `json:"light_level"`
	Moisture    float32   `json:"moisture"`
	Resources   Resources `json:"resources"`
}

// NewEnvironment builds an environment, saturating each condition into
// [0, 1].
func NewEnvironment(temperature, lightLevel, moisture, organic, minerals, light float32) Environment {
	return Environment{
		Temperature: clamp01(temperature),
		LightLevel:  clamp01(lightLevel),
		Moisture:    clamp01(moisture),
		Resources: Resources{
			Organic:  organic,
			Minerals: minerals,
			Light:    light,
		},
	}
}

// clamp01 saturates v into [0, 1].
func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
