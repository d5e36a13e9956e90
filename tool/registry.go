package tool

import (
	"strings"
	"sync"
)

// RegistryOptions configures a Registry instance.
type RegistryOptions struct {
	// Strict makes Register fail with *DuplicateError when a name is already
	// taken. The default is last-write-wins, matching catalogs that are
	// populated by repeated startup composition.
	Strict bool
}

// Registry is a process-wide catalog mapping tool names to tools. Names are
// compared case-insensitively; registration order is preserved so List and
// Specifications produce deterministic LLM-facing tool menus.
//
// The registry is populated once at startup and treated as read-mostly
// afterwards. It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]Tool // keyed by lowercase name
	order []string        // lowercase names in first-registration order
	opts  RegistryOptions
}

// NewRegistry constructs an empty registry.
func NewRegistry(optFns ...func(o *RegistryOptions)) *Registry {
	opts := RegistryOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Registry{tools: make(map[string]Tool), opts: opts}
}

// Register adds or replaces the entry keyed by t.Name(). Replacing keeps the
// original position in the catalog order. In strict mode a second
// registration under the same name fails with *DuplicateError instead.
func (r *Registry) Register(t Tool) error {
	key := strings.ToLower(t.Name())

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tools[key]; exists {
		if r.opts.Strict {
			return &DuplicateError{Name: t.Name()}
		}
		r.tools[key] = t
		return nil
	}

	r.tools[key] = t
	r.order = append(r.order, key)
	return nil
}

// RegisterAll registers multiple tools, stopping at the first failure.
func (r *Registry) RegisterAll(tools ...Tool) error {
	for _, t := range tools {
		if err := r.Register(t); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the tool registered under name or *NotFoundError.
func (r *Registry) Get(name string) (Tool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tools[strings.ToLower(name)]
	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	return t, nil
}

// Has reports whether a tool is registered under name.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.tools[strings.ToLower(name)]
	return ok
}

// List returns a snapshot of all tools in registration order.
func (r *Registry) List() []Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tools := make([]Tool, 0, len(r.order))
	for _, key := range r.order {
		tools = append(tools, r.tools[key])
	}
	return tools
}

// Names returns the declared (original-case) tool names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.order))
	for _, key := range r.order {
		names = append(names, r.tools[key].Name())
	}
	return names
}

// Len returns the number of registered tools.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// Specification renders the registered tool's LLM-facing specification or
// fails with *NotFoundError.
func (r *Registry) Specification(name string) (*Specification, error) {
	t, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	return NewSpecification(t), nil
}

// Specifications renders every registered tool in registration order. The
// result is stable for a given registry state; prompts are rebuilt each call
// and must not drift.
func (r *Registry) Specifications() []*Specification {
	tools := r.List()
	specs := make([]*Specification, 0, len(tools))
	for _, t := range tools {
		specs = append(specs, NewSpecification(t))
	}
	return specs
}
