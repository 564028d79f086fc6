package addon

import "fmt"

// LaunchRenderer would start the RayCast executable on an exported scene
// file. Launching is not implemented yet; the call exists so the auto-render
// toggle has somewhere to report its state.
//
// TODO: spawn the renderer via os/exec once RayCast accepts a scene path
// argument.
//
// Parameters:
//   - rendererPath: the RayCast executable path
//   - scenePath: the exported scene file
//
// Returns:
//   - error: always a not-implemented error
func LaunchRenderer(rendererPath, scenePath string) error {
	return fmt.Errorf("launch renderer: not implemented")
}
