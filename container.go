package servicecontainer

import (
	"fmt"
	"sort"
)

// ── Bindings ──────────────────────────────────────────────────────────────────

// Bindings maps service names to providers. A provider must be one of the
// forms accepted by Factory/TxFactory (see provider.go); by default this is
// only checked when the service is first resolved.
type Bindings map[string]any

// Merge combines binding sets into a new Bindings, leaving the inputs
// untouched. The same service name appearing in more than one set is a
// DuplicateBindingError — binding sets are meant to be disjoint modules
// assembled before the container is built.
//
//	all, err := coreBindings.Merge(storeBindings, httpBindings)
//	sc, err := servicecontainer.New(all)
func (b Bindings) Merge(others ...Bindings) (Bindings, error) {
	out := make(Bindings, len(b))
	for name, provider := range b {
		out[name] = provider
	}
	for _, other := range others {
		for name, provider := range other {
			if _, exists := out[name]; exists {
				return nil, &DuplicateBindingError{Name: name}
			}
			out[name] = provider
		}
	}
	return out, nil
}

// ── Options ───────────────────────────────────────────────────────────────────

// Option configures container construction.
type Option func(*options)

type options struct {
	strict bool
}

// Strict makes New validate every provider's form eagerly instead of at first
// invocation. Construction then fails with an InvalidProviderError naming the
// first bad binding.
func Strict() Option {
	return func(o *options) { o.strict = true }
}

// ── Container ─────────────────────────────────────────────────────────────────

// Container is an immutable registry of service providers. It holds no state
// beyond the bindings passed to New: every retrieval goes through a
// Transaction, created implicitly per Get call or explicitly via Begin/With.
//
//	sc, _ := servicecontainer.New(servicecontainer.Bindings{
//	    "config": func() (any, error) { return loadConfiguration() },
//	    "redis": func(tx *servicecontainer.Transaction) (any, error) {
//	        cfg, err := servicecontainer.Resolve[*Config](tx, "config")
//	        if err != nil {
//	            return nil, err
//	        }
//	        return dialRedis(cfg.Redis)
//	    },
//	})
//
//	redis, err := sc.Get("redis")
//
// A Container is safe for concurrent use: it is never mutated after New, and
// transactions never share cache entries unless forked from one another.
type Container struct {
	providers Bindings
}

// New builds a container from bindings. The map is copied, so later changes to
// the argument do not affect the container. Provider forms are checked lazily
// at first invocation unless the Strict option is given.
func New(bindings Bindings, opts ...Option) (*Container, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	providers := make(Bindings, len(bindings))
	for name, provider := range bindings {
		if o.strict {
			if _, err := normalize(name, provider); err != nil {
				return nil, err
			}
		}
		providers[name] = provider
	}
	return &Container{providers: providers}, nil
}

// Get resolves a service through a fresh, empty transaction that is discarded
// afterwards. Two successive Get calls therefore never share instances; use
// Begin or With when callers need consistent instances across lookups.
func (c *Container) Get(name string) (any, error) {
	return c.Begin().Get(name)
}

// Begin opens an explicit transaction with no params. A transaction holds no
// external resources, so there is nothing to close — abandon it when done.
func (c *Container) Begin() *Transaction {
	return newTransaction(c.providers, nil, nil)
}

// With opens a transaction seeded with params. The base transaction carries no
// params of its own, so the keys can never collide here; the error return
// mirrors Transaction.Fork, which enforces the write-once rule.
func (c *Container) With(params Params) (*Transaction, error) {
	return c.Begin().Fork(params)
}

// Has reports whether a provider is registered under name.
func (c *Container) Has(name string) bool {
	_, ok := c.providers[name]
	return ok
}

// Names returns the registered service names, sorted. Intended for debugging.
func (c *Container) Names() []string {
	out := make([]string, 0, len(c.providers))
	for name := range c.providers {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// ── Generics helper ───────────────────────────────────────────────────────────

// Getter is the common resolution surface of Container and Transaction.
type Getter interface {
	Get(name string) (any, error)
}

// Resolve retrieves a service and asserts its type.
//
//	// Instead of: redis := raw.(*Redis) with an unchecked assertion
//	redis, err := servicecontainer.Resolve[*Redis](tx, "redis")
//
// A registry miss surfaces as MissingProviderError; an instance of the wrong
// type as WrongTypeError. The two stay distinct so callers can tell a
// container-level lookup failure from misuse of the value it returned.
func Resolve[T any](g Getter, name string) (T, error) {
	var zero T
	v, err := g.Get(name)
	if err != nil {
		return zero, err
	}
	typed, ok := v.(T)
	if !ok {
		return zero, &WrongTypeError{
			Name: name,
			Want: fmt.Sprintf("%T", zero),
			Got:  fmt.Sprintf("%T", v),
		}
	}
	return typed, nil
}
