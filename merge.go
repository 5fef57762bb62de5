package weld

// deepMerge merges src into dst recursively and returns dst. Nested
// map[string]interface{} values merge key by key; every other value
// (scalars, slices, resolver funcs) is an atomic leaf replaced wholesale by
// src. Callers merge fragments left to right in sorted order, so the
// later-sorted fragment wins conflicting leaves.
func deepMerge(dst, src map[string]interface{}) map[string]interface{} {
	for key, sv := range src {
		sm, sOK := sv.(map[string]interface{})
		dm, dOK := dst[key].(map[string]interface{})
		if sOK && dOK {
			dst[key] = deepMerge(dm, sm)
			continue
		}
		if sOK {
			// Copy so later merges into dst never reach back into the
			// registered fragment.
			dst[key] = deepMerge(map[string]interface{}{}, sm)
			continue
		}
		dst[key] = sv
	}
	return dst
}
