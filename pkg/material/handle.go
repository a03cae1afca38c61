package material

import "github.com/google/uuid"

// ShaderHandle is an opaque, copyable reference to a shader held in a
// Registry. Passing a ShaderHandle around (instead of the shader interface
// itself) is the Go equivalent of the original's `Arc<dyn Shader>` shared
// ownership: many objects carry the same handle, and exactly one shader
// instance backs it in the registry.
type ShaderHandle struct {
	id uuid.UUID
}

// Registry holds shared shader instances keyed by ShaderHandle. A nil
// *Registry is never dereferenced; callers that don't need shared shaders
// can skip it entirely and store shader interfaces directly on their
// objects.
type Registry struct {
	solids      map[uuid.UUID]SolidShader
	volumetrics map[uuid.UUID]VolumetricShader
	backgrounds map[uuid.UUID]BackgroundShader
}

// NewRegistry creates an empty shader registry.
func NewRegistry() *Registry {
	return &Registry{
		solids:      make(map[uuid.UUID]SolidShader),
		volumetrics: make(map[uuid.UUID]VolumetricShader),
		backgrounds: make(map[uuid.UUID]BackgroundShader),
	}
}

// RegisterSolid stores shader under a fresh handle and returns it.
func (r *Registry) RegisterSolid(shader SolidShader) ShaderHandle {
	h := ShaderHandle{id: uuid.New()}
	r.solids[h.id] = shader
	return h
}

// RegisterVolumetric stores shader under a fresh handle and returns it.
func (r *Registry) RegisterVolumetric(shader VolumetricShader) ShaderHandle {
	h := ShaderHandle{id: uuid.New()}
	r.volumetrics[h.id] = shader
	return h
}

// RegisterBackground stores shader under a fresh handle and returns it.
func (r *Registry) RegisterBackground(shader BackgroundShader) ShaderHandle {
	h := ShaderHandle{id: uuid.New()}
	r.backgrounds[h.id] = shader
	return h
}

// Solid resolves a handle previously returned by RegisterSolid.
func (r *Registry) Solid(h ShaderHandle) (SolidShader, bool) {
	s, ok := r.solids[h.id]
	return s, ok
}

// Volumetric resolves a handle previously returned by RegisterVolumetric.
func (r *Registry) Volumetric(h ShaderHandle) (VolumetricShader, bool) {
	s, ok := r.volumetrics[h.id]
	return s, ok
}

// Background resolves a handle previously returned by RegisterBackground.
func (r *Registry) Background(h ShaderHandle) (BackgroundShader, bool) {
	s, ok := r.backgrounds[h.id]
	return s, ok
}
