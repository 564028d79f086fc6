package scene

import (
	"log"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"

	"github.com/Shinzef/BlenderRayTracer/common"
	"github.com/Shinzef/BlenderRayTracer/engine/scene_object"
)

// Scene manages an ordered registry of SceneObjects together with the active
// camera, the active (selected) object, and the render output settings.
// Enumeration order is insertion order; the exporter treats it as the
// scene's native object order and preserves it in the output document.
// Thread-safe for concurrent access.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// SetName sets the scene's identifier.
	SetName(name string)

	// Add adds a SceneObject to the scene, assigning it a unique ID and
	// appending it to the enumeration order.
	//
	// Parameters:
	//   - obj: the SceneObject to add
	//
	// Returns:
	//   - uint64: the assigned object ID
	Add(obj scene_object.SceneObject) uint64

	// Get retrieves a SceneObject by its ID.
	// Returns nil if not found.
	//
	// Parameters:
	//   - id: the object's unique ID
	//
	// Returns:
	//   - scene_object.SceneObject: the object or nil
	Get(id uint64) scene_object.SceneObject

	// Remove removes a SceneObject from the registry and the enumeration
	// order by ID. Removing the active camera or active object clears that
	// reference.
	//
	// Parameters:
	//   - id: the object's unique ID
	Remove(id uint64)

	// Clear removes all objects from the scene.
	Clear()

	// Count returns the number of objects in the scene.
	//
	// Returns:
	//   - int: count of SceneObjects in the registry
	Count() int

	// Objects returns the scene's objects in native enumeration order.
	// The returned slice is a copy; the objects themselves are shared.
	//
	// Returns:
	//   - []scene_object.SceneObject: the objects in insertion order
	Objects() []scene_object.SceneObject

	// ActiveCamera returns the scene's active camera object, or nil when the
	// scene has no camera.
	//
	// Returns:
	//   - scene_object.SceneObject: the active camera object or nil
	ActiveCamera() scene_object.SceneObject

	// SetActiveCamera sets the scene's active camera object. Pass nil to
	// clear it.
	//
	// Parameters:
	//   - obj: the camera object, or nil
	SetActiveCamera(obj scene_object.SceneObject)

	// ActiveObject returns the currently selected object, or nil.
	//
	// Returns:
	//   - scene_object.SceneObject: the selected object or nil
	ActiveObject() scene_object.SceneObject

	// SetActiveObject sets the currently selected object. Pass nil to clear
	// the selection.
	//
	// Parameters:
	//   - obj: the object to select, or nil
	SetActiveObject(obj scene_object.SceneObject)

	// RenderSettings returns the scene's render output settings.
	//
	// Returns:
	//   - common.RenderSettings: the render settings
	RenderSettings() common.RenderSettings

	// SetRenderSettings replaces the scene's render output settings.
	//
	// Parameters:
	//   - settings: the new render settings
	SetRenderSettings(settings common.RenderSettings)

	// BakeAll evaluates the modifier stack of every mesh object in parallel
	// on the scene's worker pool and caches the results, so a subsequent
	// export walk reads pre-baked geometry. Bake failures are logged and
	// counted, never fatal: the exporter's fallback chain handles them
	// per object.
	//
	// Returns:
	//   - int: the number of meshes whose bake failed
	BakeAll() int
}

// scene is the implementation of the Scene interface.
type scene struct {
	mu *sync.RWMutex

	name string

	registry map[uint64]scene_object.SceneObject
	order    []uint64
	nextID   uint64

	activeCamera scene_object.SceneObject
	activeObject scene_object.SceneObject

	renderSettings common.RenderSettings

	// bakePool manages a bounded set of reusable goroutines for parallel
	// modifier-stack evaluation in BakeAll. Workers persist across calls.
	bakePool    worker.DynamicWorkerPool
	bakeWorkers int
}

var _ Scene = &scene{}

// NewScene creates a new empty Scene with the given options applied.
//
// Parameters:
//   - options: functional options to configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(options ...SceneBuilderOption) Scene {
	s := &scene{
		mu:             &sync.RWMutex{},
		registry:       make(map[uint64]scene_object.SceneObject),
		nextID:         1,
		renderSettings: common.DefaultRenderSettings(),
		bakeWorkers:    max(runtime.NumCPU()-1, 1),
	}

	for _, option := range options {
		option(s)
	}

	// Initialize the bake pool after options so WithBakeWorkers can override
	// the default. Queue size of 256 accommodates typical scene sizes with headroom.
	s.bakePool = worker.NewDynamicWorkerPool(s.bakeWorkers, 256, 1*time.Second)

	return s
}

func (s *scene) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *scene) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

func (s *scene) Add(obj scene_object.SceneObject) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	obj.SetID(id)
	s.registry[id] = obj
	s.order = append(s.order, id)
	return id
}

func (s *scene) Get(id uint64) scene_object.SceneObject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.registry[id]
}

func (s *scene) Remove(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	obj, ok := s.registry[id]
	if !ok {
		return
	}
	delete(s.registry, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	if s.activeCamera == obj {
		s.activeCamera = nil
	}
	if s.activeObject == obj {
		s.activeObject = nil
	}
}

func (s *scene) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.registry = make(map[uint64]scene_object.SceneObject)
	s.order = nil
	s.activeCamera = nil
	s.activeObject = nil
}

func (s *scene) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.registry)
}

func (s *scene) Objects() []scene_object.SceneObject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]scene_object.SceneObject, 0, len(s.order))
	for _, id := range s.order {
		if obj, ok := s.registry[id]; ok {
			out = append(out, obj)
		}
	}
	return out
}

func (s *scene) ActiveCamera() scene_object.SceneObject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeCamera
}

func (s *scene) SetActiveCamera(obj scene_object.SceneObject) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeCamera = obj
}

func (s *scene) ActiveObject() scene_object.SceneObject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeObject
}

func (s *scene) SetActiveObject(obj scene_object.SceneObject) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeObject = obj
}

func (s *scene) RenderSettings() common.RenderSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.renderSettings
}

func (s *scene) SetRenderSettings(settings common.RenderSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.renderSettings = settings
}

func (s *scene) BakeAll() int {
	objects := s.Objects()

	var wg sync.WaitGroup
	var failed atomic.Int64
	taskID := 0
	for _, obj := range objects {
		msh := obj.Mesh()
		if msh == nil {
			continue
		}

		wg.Add(1)
		objCap := obj // capture for closure
		mshCap := msh
		id := taskID
		taskID++
		s.bakePool.SubmitTask(worker.Task{
			ID: id,
			Do: func() (any, error) {
				defer wg.Done()
				if _, err := mshCap.Bake(); err != nil {
					log.Printf("[Scene] bake failed for %q: %v", objCap.Name(), err)
					failed.Add(1)
				}
				return nil, nil
			},
		})
	}
	wg.Wait()

	return int(failed.Load())
}
