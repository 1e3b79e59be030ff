package search

import (
	"sort"
	"sync"
)

// ProviderRegistry maps a collection type to the factory that builds its provider.
// Each service owns its registry, so tests can register without touching others.
type ProviderRegistry struct {
	mu        sync.RWMutex
	factories map[CollectionType]ProviderFactory
}

// NewProviderRegistry creates an empty provider registry
func NewProviderRegistry() *ProviderRegistry {
	return &ProviderRegistry{factories: make(map[CollectionType]ProviderFactory)}
}

// DefaultProviders returns a registry holding the three built-in providers
func DefaultProviders() *ProviderRegistry {
	r := NewProviderRegistry()
	r.Register(CollectionClinicalStudy, NewClinicalStudyProvider)
	r.Register(CollectionScientificPaper, NewScientificPaperProvider)
	r.Register(CollectionDataDomain, NewDataDomainProvider)
	return r
}

// Register associates a collection type with a factory. The last registration wins.
func (r *ProviderRegistry) Register(c CollectionType, factory ProviderFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[c] = factory
}

// Provider builds a provider for c bound to deps
func (r *ProviderRegistry) Provider(c CollectionType, deps Deps) (Provider, error) {
	r.mu.RLock()
	factory, ok := r.factories[c]
	r.mu.RUnlock()

	if !ok || factory == nil {
		return nil, unknownCollection(c)
	}
	return factory(deps), nil
}

// Collections lists the registered collection types in order
func (r *ProviderRegistry) Collections() []CollectionType {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]CollectionType, 0, len(r.factories))
	for c := range r.factories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// SchemaRegistry maps a schema type to the factory that builds its transformer
type SchemaRegistry struct {
	mu        sync.RWMutex
	factories map[SchemaType]TransformerFactory
}

// NewSchemaRegistry creates an empty schema registry
func NewSchemaRegistry() *SchemaRegistry {
	return &SchemaRegistry{factories: make(map[SchemaType]TransformerFactory)}
}

// DefaultSchemas returns a registry holding the six built-in transformers
func DefaultSchemas() *SchemaRegistry {
	r := NewSchemaRegistry()
	r.Register(SchemaDefault, func() Transformer { return DefaultTransformer{} })
	r.Register(SchemaCompact, func() Transformer { return CompactTransformer{} })
	r.Register(SchemaDetailed, func() Transformer { return DetailedTransformer{} })
	r.Register(SchemaScientificPaper, func() Transformer { return PaperTransformer{} })
	r.Register(SchemaDataDomain, func() Transformer { return DomainTransformer{} })
	r.Register(SchemaClinicalStudyCustom, func() Transformer { return &StudyTransformer{} })
	return r
}

// Register associates a schema type with a factory. The last registration wins.
func (r *SchemaRegistry) Register(s SchemaType, factory TransformerFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[s] = factory
}

// Transformer builds the transformer for s. A missing entry is not an error;
// callers fall back to DefaultTransformer.
func (r *SchemaRegistry) Transformer(s SchemaType) (Transformer, bool) {
	r.mu.RLock()
	factory, ok := r.factories[s]
	r.mu.RUnlock()

	if !ok || factory == nil {
		return nil, false
	}
	t := factory()
	if t == nil {
		return nil, false
	}
	return t, true
}

// Schemas lists the registered schema types in order
func (r *SchemaRegistry) Schemas() []SchemaType {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]SchemaType, 0, len(r.factories))
	for s := range r.factories {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
