package place

import (
	"sync"

	"github.com/katalvlaran/rlg/geom"
)

// Instance is a piece recorded by MemoryScene.
type Instance struct {
	ID       int
	Template string
	Position geom.Vec3
	Rotation geom.Vec3
}

// MemoryScene is a Scene, Sizer and Remover that records instances in
// memory. Templates must be registered before they are spawned.
// It is safe for concurrent use.
type MemoryScene struct {
	mu        sync.Mutex
	sizes     map[string]geom.Vec3
	instances []Instance
	nextID    int
}

// NewMemoryScene returns an empty scene.
func NewMemoryScene() *MemoryScene {
	return &MemoryScene{sizes: make(map[string]geom.Vec3)}
}

// Register declares a template and its size. It returns s for chaining.
func (s *MemoryScene) Register(template string, size geom.Vec3) *MemoryScene {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sizes[template] = size
	return s
}

// Spawn records an instance and returns its ID as the Handle.
func (s *MemoryScene) Spawn(template string, pos, rot geom.Vec3) (Handle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sizes[template]; !ok {
		return nil, ErrUnknownTemplate
	}
	s.nextID++
	s.instances = append(s.instances, Instance{ID: s.nextID, Template: template, Position: pos, Rotation: rot})
	return s.nextID, nil
}

// Dimensions returns the registered size of template.
func (s *MemoryScene) Dimensions(template string) (geom.Vec3, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	size, ok := s.sizes[template]
	if !ok {
		return geom.Vec3{}, ErrUnknownTemplate
	}
	return size, nil
}

// Remove deletes the instance identified by h.
func (s *MemoryScene) Remove(h Handle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := h.(int)
	if !ok {
		return ErrUnknownHandle
	}
	for i, in := range s.instances {
		if in.ID == id {
			s.instances = append(s.instances[:i], s.instances[i+1:]...)
			return nil
		}
	}
	return ErrUnknownHandle
}

// Instances returns a copy of the live instances in spawn order.
func (s *MemoryScene) Instances() []Instance {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Instance, len(s.instances))
	copy(out, s.instances)
	return out
}
