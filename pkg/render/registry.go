package render

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"
)

type registration struct {
	extension Extension
	priority  int
	seq       int
}

// Pipeline stores extensions by name and starts render cycles that run their
// hooks in priority order.
type Pipeline struct {
	mu            sync.RWMutex
	registrations map[string]registration
	seq           int
	logger        *zap.Logger
}

// NewPipeline creates an empty pipeline.
func NewPipeline(options ...Option) *Pipeline {
	p := &Pipeline{
		registrations: make(map[string]registration),
		logger:        zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(p)
	}
	return p
}

// Register adds an extension by its Name(). Duplicate names return an error.
func (p *Pipeline) Register(ext Extension, options ...RegisterOption) error {
	if ext == nil {
		return fmt.Errorf("render: extension is required")
	}
	name := ext.Name()
	if name == "" {
		return fmt.Errorf("render: extension name is required")
	}

	reg := registration{extension: ext, priority: DefaultPriority}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&reg)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, exists := p.registrations[name]; exists {
		return fmt.Errorf("render: extension %q already registered", name)
	}
	p.seq++
	reg.seq = p.seq
	p.registrations[name] = reg
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (p *Pipeline) MustRegister(ext Extension, options ...RegisterOption) {
	if err := p.Register(ext, options...); err != nil {
		panic(err)
	}
}

// Has reports whether an extension is registered.
func (p *Pipeline) Has(name string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	_, ok := p.registrations[name]
	return ok
}

// List returns extension names in hook execution order.
func (p *Pipeline) List() []string {
	ordered := p.ordered()
	names := make([]string, 0, len(ordered))
	for _, reg := range ordered {
		names = append(names, reg.extension.Name())
	}
	return names
}

// Begin starts a render cycle. Every registered extension gets a fresh set of
// hooks, so nothing one cycle collects is visible to another.
func (p *Pipeline) Begin(ctx context.Context) *Cycle {
	ordered := p.ordered()
	cycle := &Cycle{
		hooks:  make([]namedHooks, 0, len(ordered)),
		logger: p.logger,
	}
	for _, reg := range ordered {
		cycle.hooks = append(cycle.hooks, namedHooks{
			name:  reg.extension.Name(),
			Hooks: reg.extension.Begin(ctx),
		})
	}
	p.logger.Debug("render cycle started", zap.Int("extensions", len(cycle.hooks)))
	return cycle
}

func (p *Pipeline) ordered() []registration {
	if p == nil {
		return nil
	}
	p.mu.RLock()
	out := make([]registration, 0, len(p.registrations))
	for _, reg := range p.registrations {
		out = append(out, reg)
	}
	p.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].priority != out[j].priority {
			return out[i].priority < out[j].priority
		}
		return out[i].seq < out[j].seq
	})
	return out
}
