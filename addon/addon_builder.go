package addon

// AddonBuilderOption is a functional option for configuring an addon during
// construction.
type AddonBuilderOption func(*addon)

// WithPreferencesPath sets the YAML file preferences load from on Register.
//
// Parameters:
//   - path: the preferences file path
//
// Returns:
//   - AddonBuilderOption: the builder option
func WithPreferencesPath(path string) AddonBuilderOption {
	return func(a *addon) {
		a.prefsPath = path
	}
}

// WithOperator sets a preconfigured export operator.
//
// Parameters:
//   - op: the operator to install
//
// Returns:
//   - AddonBuilderOption: the builder option
func WithOperator(op ExportOperator) AddonBuilderOption {
	return func(a *addon) {
		a.operator = op
	}
}
