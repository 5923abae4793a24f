package eval

import "maps"

// Env holds the variables available to expressions in addition to doc.
type Env map[string]any

func (e Env) with(k string, v any) Env {
	res := make(Env, len(e)+1)
	maps.Copy(res, e)
	res[k] = v
	return res
}
