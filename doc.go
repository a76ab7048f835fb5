// Package servicecontainer provides a dependency-injection container with
// transaction-scoped instance caching and one-shot params.
//
// # Overview
//
// A Container is an immutable registry mapping service names to providers —
// factory functions taking either no argument or the active *Transaction.
// Services are constructed lazily, on first retrieval, and providers may
// depend on other services in the same registry.
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
//	    "queue": func(tx *servicecontainer.Transaction) (any, error) {
//	        redis, err := servicecontainer.Resolve[*Redis](tx, "redis")
//	        if err != nil {
//	            return nil, err
//	        }
//	        return NewQueue("some_queue", redis), nil
//	    },
//	})
//
// # Transactions
//
// Every retrieval runs inside a Transaction, which caches the instances it
// constructs. Container.Get opens an implicit transaction for the single
// lookup and discards it, so dependencies shared by one service graph are
// consistent, but two top-level Get calls never share instances:
//
//	q1, _ := sc.Get("queue") // one transaction: queue and redis belong together
//	q2, _ := sc.Get("queue") // fresh transaction: a second queue, second redis
//
// Open a transaction explicitly to keep instances alive across lookups:
//
//	tx := sc.Begin()
//	a, _ := tx.Get("redis")
//	b, _ := tx.Get("redis") // identical instance
//
// A transaction holds no external resources; abandon it when done.
//
// # Params
//
// Providers can read named values fixed at scope-entry time:
//
//	tx, _ := sc.With(servicecontainer.Params{"lang": "cz"})
//	conn, _ := tx.Get("connection") // provider reads tx.Param("lang")
//
// Params are write-once per lineage: Fork may add keys, never replace them.
//
// # Errors
//
// All failures are ordinary error returns. Container-level conditions unwrap
// to the package sentinels (ErrMissingProvider, ErrCircularDependency, ...);
// failures returned by a provider's own logic propagate unmodified.
package servicecontainer
