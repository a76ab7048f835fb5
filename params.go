package servicecontainer

// ── Params ────────────────────────────────────────────────────────────────────

// Params are named values fixed at scope-entry time and readable by providers
// through the transaction. Keys are write-once per transaction lineage: a fork
// may add keys, never replace them.
type Params map[string]any

// merge returns a new Params holding p plus add. Any key of add already
// present in p fails the whole merge with a ParamOverrideError; nothing is
// applied partially.
func (p Params) merge(add Params) (Params, error) {
	out := make(Params, len(p)+len(add))
	for key, val := range p {
		out[key] = val
	}
	for key, val := range add {
		if _, exists := out[key]; exists {
			return nil, &ParamOverrideError{Key: key}
		}
		out[key] = val
	}
	return out, nil
}

// Param reads a single param, failing with a MissingParamError when the key
// was never set for this transaction's lineage. Providers typically call this
// on the transaction they receive:
//
//	"connection": func(tx *servicecontainer.Transaction) (any, error) {
//	    lang, err := tx.Param("lang")
//	    if err != nil {
//	        return nil, err
//	    }
//	    return dial("db_" + lang.(string))
//	},
func (t *Transaction) Param(key string) (any, error) {
	val, ok := t.params[key]
	if !ok {
		return nil, &MissingParamError{Key: key}
	}
	return val, nil
}

// Params returns a copy of the transaction's params. Mutating the copy does
// not affect the transaction.
func (t *Transaction) Params() Params {
	out := make(Params, len(t.params))
	for key, val := range t.params {
		out[key] = val
	}
	return out
}
