package addon

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/Shinzef/BlenderRayTracer/engine/profiler"
	"github.com/Shinzef/BlenderRayTracer/engine/scene"
	"github.com/Shinzef/BlenderRayTracer/export"
)

// exportOperator implements the ExportOperator interface.
type exportOperator struct {
	filepath     string
	exportDir    string
	rendererPath string
	options      export.Options
	props        SceneProperties
	prof         *profiler.Profiler
}

var _ ExportOperator = &exportOperator{}

// ExportOperator writes the active scene to a renderer-ready JSON file.
// The operator owns only the invocation state (destination path, option
// flags); all translation happens in the export package.
type ExportOperator interface {
	// Filepath returns the destination file path.
	//
	// Returns:
	//   - string: the destination path, or "" if not yet set
	Filepath() string

	// SetFilepath sets the destination file path.
	//
	// Parameters:
	//   - path: the destination path
	SetFilepath(path string)

	// ExportDir returns the directory used for the default export path.
	//
	// Returns:
	//   - string: the export directory, or "" for the working directory
	ExportDir() string

	// SetExportDir sets the directory used for the default export path.
	//
	// Parameters:
	//   - dir: the export directory, or "" for the working directory
	SetExportDir(dir string)

	// SetRendererPath sets the RayCast executable used by auto render.
	//
	// Parameters:
	//   - path: the renderer executable path
	SetRendererPath(path string)

	// BindProperties attaches the scene panel properties the operator
	// consults on Execute (the auto-render toggle). Pass nil to detach.
	//
	// Parameters:
	//   - props: the panel properties, or nil
	BindProperties(props SceneProperties)

	// Options returns the export option flags for this invocation.
	//
	// Returns:
	//   - export.Options: the current option flags
	Options() export.Options

	// SetOptions sets the export option flags for this invocation.
	//
	// Parameters:
	//   - opts: the option flags to use
	SetOptions(opts export.Options)

	// Execute serializes the scene and writes it to the operator's path.
	// When no path is set, the scene's default export path inside the
	// configured export directory is used. With the auto-render toggle on,
	// the renderer is launched on the written file; a launch failure is
	// logged, never fatal — the export itself already succeeded.
	//
	// Parameters:
	//   - sc: the scene to export
	//
	// Returns:
	//   - error: error if the scene is nil or the write fails
	Execute(sc scene.Scene) error
}

// NewExportOperator creates an export operator with default options and
// an unset destination path.
//
// Parameters:
//   - options: functional options for operator configuration
//
// Returns:
//   - ExportOperator: the newly created operator
func NewExportOperator(options ...ExportOperatorBuilderOption) ExportOperator {
	op := &exportOperator{
		options: export.DefaultOptions(),
		prof:    profiler.NewProfiler(),
	}

	for _, opt := range options {
		opt(op)
	}

	return op
}

// DefaultExportPath returns the destination path used when the operator is
// invoked without one: the scene name with a "_raycast.json" suffix, in the
// given directory. A scene without a name exports as "scene_raycast.json";
// an empty directory means the working directory.
//
// Parameters:
//   - sc: the scene being exported
//   - dir: the directory to export into, or "" for the working directory
//
// Returns:
//   - string: the default destination path
func DefaultExportPath(sc scene.Scene, dir string) string {
	if dir == "" {
		dir = "."
	}
	name := strings.TrimSpace(sc.Name())
	if name == "" {
		name = "scene"
	}
	return filepath.Join(dir, name+"_raycast.json")
}

func (o *exportOperator) Filepath() string {
	return o.filepath
}

func (o *exportOperator) SetFilepath(path string) {
	o.filepath = path
}

func (o *exportOperator) ExportDir() string {
	return o.exportDir
}

func (o *exportOperator) SetExportDir(dir string) {
	o.exportDir = dir
}

func (o *exportOperator) SetRendererPath(path string) {
	o.rendererPath = path
}

func (o *exportOperator) BindProperties(props SceneProperties) {
	o.props = props
}

func (o *exportOperator) Options() export.Options {
	return o.options
}

func (o *exportOperator) SetOptions(opts export.Options) {
	o.options = opts
}

func (o *exportOperator) Execute(sc scene.Scene) error {
	if sc == nil {
		return fmt.Errorf("export: no scene")
	}

	path := o.filepath
	if path == "" {
		path = DefaultExportPath(sc, o.exportDir)
	}

	o.prof.Begin()
	doc := export.Serialize(sc, o.options)
	if err := export.WriteDocument(doc, path); err != nil {
		return fmt.Errorf("export %q: %w", path, err)
	}
	o.prof.End(len(doc.Objects), len(doc.Lights))

	log.Printf("[Addon] exported scene %q to %s", sc.Name(), path)

	if o.props != nil && o.props.AutoRender() {
		if err := LaunchRenderer(o.rendererPath, path); err != nil {
			log.Printf("[Addon] auto render: %v", err)
		}
	}
	return nil
}
