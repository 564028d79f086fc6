package addon

import "github.com/Shinzef/BlenderRayTracer/export"

// ExportOperatorBuilderOption is a functional option for configuring an
// export operator during construction.
type ExportOperatorBuilderOption func(*exportOperator)

// WithFilepath sets the destination file path.
//
// Parameters:
//   - path: the destination path
//
// Returns:
//   - ExportOperatorBuilderOption: the builder option
func WithFilepath(path string) ExportOperatorBuilderOption {
	return func(o *exportOperator) {
		o.filepath = path
	}
}

// WithExportOptions sets the export option flags.
//
// Parameters:
//   - opts: the option flags to use
//
// Returns:
//   - ExportOperatorBuilderOption: the builder option
func WithExportOptions(opts export.Options) ExportOperatorBuilderOption {
	return func(o *exportOperator) {
		o.options = opts
	}
}
