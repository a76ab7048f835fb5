package servicecontainer

// ── Provider forms ────────────────────────────────────────────────────────────

// Factory builds a service instance with no dependencies.
//
//	sc, _ := servicecontainer.New(servicecontainer.Bindings{
//	    "config": servicecontainer.Factory(func() (any, error) {
//	        return loadConfiguration()
//	    }),
//	})
type Factory func() (any, error)

// TxFactory builds a service instance and receives the active transaction,
// through which it may resolve sibling services (sharing the transaction's
// cache) and read params.
//
//	"queue": servicecontainer.TxFactory(func(tx *servicecontainer.Transaction) (any, error) {
//	    redis, err := servicecontainer.Resolve[*Redis](tx, "redis")
//	    if err != nil {
//	        return nil, err
//	    }
//	    return NewQueue("some_queue", redis), nil
//	}),
type TxFactory func(tx *Transaction) (any, error)

// normalize converts any accepted provider form to the one shape the
// resolution engine invokes. The accepted forms are Factory, TxFactory, their
// unnamed equivalents, and the two infallible variants returning a bare value.
// Anything else is an InvalidProviderError.
func normalize(name string, v any) (TxFactory, error) {
	switch p := v.(type) {
	case TxFactory:
		return p, nil
	case func(*Transaction) (any, error):
		return p, nil
	case Factory:
		return func(*Transaction) (any, error) { return p() }, nil
	case func() (any, error):
		return func(*Transaction) (any, error) { return p() }, nil
	case func(*Transaction) any:
		return func(tx *Transaction) (any, error) { return p(tx), nil }, nil
	case func() any:
		return func(*Transaction) (any, error) { return p(), nil }, nil
	default:
		return nil, &InvalidProviderError{Name: name, Got: v}
	}
}
