package servicecontainer

// ── Transaction ───────────────────────────────────────────────────────────────

// Transaction is a resolution scope: a snapshot of the container's providers,
// a cache of the instances resolved through it, and a frozen set of params.
// Within one transaction, repeated Get calls for a name return the identical
// instance; independent transactions never share instances unless one was
// forked from the other with entries already cached.
//
// A Transaction is confined to a single goroutine. The Container it came from
// may be shared freely; the transaction may not.
type Transaction struct {
	providers Bindings
	services  map[string]any
	params    Params

	// names currently being resolved in this call chain, outermost first
	resolving []string
}

func newTransaction(providers Bindings, services map[string]any, params Params) *Transaction {
	t := &Transaction{
		providers: make(Bindings, len(providers)),
		services:  make(map[string]any, len(services)),
		params:    make(Params, len(params)),
	}
	for name, provider := range providers {
		t.providers[name] = provider
	}
	for name, svc := range services {
		t.services[name] = svc
	}
	for key, val := range params {
		t.params[key] = val
	}
	return t
}

// ── Resolution ────────────────────────────────────────────────────────────────

// Get returns the service instance registered under name, invoking its
// provider on the first lookup and the cache on every later one.
//
// An unknown name is a MissingProviderError. A provider that transitively
// resolves its own name fails fast with a CircularDependencyError carrying the
// chain rather than recursing until the stack gives out. A failure returned by
// the provider itself propagates unmodified and caches nothing, so a retry of
// the same name re-invokes the provider.
func (t *Transaction) Get(name string) (any, error) {
	if svc, ok := t.services[name]; ok {
		return svc, nil
	}

	raw, ok := t.providers[name]
	if !ok {
		return nil, &MissingProviderError{Name: name}
	}

	for _, inProgress := range t.resolving {
		if inProgress == name {
			chain := append(append([]string(nil), t.resolving...), name)
			return nil, &CircularDependencyError{Chain: chain}
		}
	}

	provider, err := normalize(name, raw)
	if err != nil {
		return nil, err
	}

	t.resolving = append(t.resolving, name)
	svc, err := provider(t)
	t.resolving = t.resolving[:len(t.resolving)-1]
	if err != nil {
		return nil, err
	}

	t.services[name] = svc
	return svc, nil
}

// Has reports whether a provider is registered under name.
func (t *Transaction) Has(name string) bool {
	_, ok := t.providers[name]
	return ok
}

// ── Forking ───────────────────────────────────────────────────────────────────

// Fork derives a child transaction: same providers, a snapshot copy of the
// cache (instances already resolved are shared, later resolutions in either
// transaction stay private to it), and the current params plus the given ones.
//
// Params are write-once per lineage: a key already present fails the whole
// fork with a ParamOverrideError before any transaction is produced. New keys
// are fine.
//
//	child, err := tx.Fork(servicecontainer.Params{"env": "test"})
func (t *Transaction) Fork(params Params) (*Transaction, error) {
	merged, err := t.params.merge(params)
	if err != nil {
		return nil, err
	}
	return newTransaction(t.providers, t.services, merged), nil
}
