package light

// LightBuilderOption is a functional option for configuring a Light during construction.
type LightBuilderOption func(*lightImpl)

// WithColor sets the RGB color of the light.
//
// Parameters:
//   - r, g, b: color components
//
// Returns:
//   - LightBuilderOption: functional option to set the color
func WithColor(r, g, b float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.color = [3]float32{r, g, b}
	}
}

// WithEnergy sets the light's power in the authoring tool's photometric units.
//
// Parameters:
//   - energy: the energy value
//
// Returns:
//   - LightBuilderOption: functional option to set the energy
func WithEnergy(energy float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.energy = energy
	}
}

// WithSpotCone sets the cone angle and edge softness for spot lights.
//
// Parameters:
//   - sizeDeg: full cone angle in degrees
//   - blend: edge softness in [0, 1]
//
// Returns:
//   - LightBuilderOption: functional option to set the spot cone
func WithSpotCone(sizeDeg, blend float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.SetSpotCone(sizeDeg, blend)
	}
}
