package addon

import (
	"log"
	"sync"
)

// addon implements the Addon interface.
type addon struct {
	mu sync.Mutex

	registered bool
	prefsPath  string

	prefs      Preferences
	properties SceneProperties
	operator   ExportOperator
}

var _ Addon = &addon{}

// Addon bundles the host-facing pieces: scene panel properties, the export
// operator, and persisted preferences. Register wires them into the host;
// Unregister tears them down again.
type Addon interface {
	// Register loads preferences and installs the operator and panel
	// properties. Safe to call once; subsequent calls are no-ops.
	Register()

	// Unregister removes the installed operator and panel properties.
	// Safe to call when not registered.
	Unregister()

	// Registered reports whether the addon is currently registered.
	//
	// Returns:
	//   - bool: true if registered
	Registered() bool

	// Properties returns the scene panel properties.
	//
	// Returns:
	//   - SceneProperties: the panel properties
	Properties() SceneProperties

	// Operator returns the export operator.
	//
	// Returns:
	//   - ExportOperator: the export operator
	Operator() ExportOperator

	// Preferences returns the loaded preferences.
	//
	// Returns:
	//   - Preferences: the current preferences
	Preferences() Preferences
}

// NewAddon creates an addon with default properties and operator. The
// preferences path may be set with WithPreferencesPath; preferences load on
// Register, not on construction.
//
// Parameters:
//   - options: functional options for addon configuration
//
// Returns:
//   - Addon: the newly created addon
func NewAddon(options ...AddonBuilderOption) Addon {
	a := &addon{
		properties: NewSceneProperties(),
		operator:   NewExportOperator(),
	}

	for _, opt := range options {
		opt(a)
	}

	return a
}

func (a *addon) Register() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.registered {
		return
	}

	a.prefs = DefaultPreferences()
	if a.prefsPath != "" {
		a.prefs = LoadPreferences(a.prefsPath)
	}
	a.properties.SetOpenBrowser(a.prefs.OpenBrowser)
	a.properties.SetAutoRender(a.prefs.AutoRender)

	a.operator.SetExportDir(a.prefs.ExportDir)
	a.operator.SetRendererPath(a.prefs.RendererPath)
	a.operator.BindProperties(a.properties)

	a.registered = true
	log.Printf("[Addon] registered")
}

func (a *addon) Unregister() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.registered {
		return
	}
	a.registered = false
	log.Printf("[Addon] unregistered")
}

func (a *addon) Registered() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.registered
}

func (a *addon) Properties() SceneProperties {
	return a.properties
}

func (a *addon) Operator() ExportOperator {
	return a.operator
}

func (a *addon) Preferences() Preferences {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.prefs
}
