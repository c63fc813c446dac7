// Package generator produces ~/.claude/settings.json from a base JSON
// template, a platform profile override, and environment substitution.
package generator

// Merge deep-merges override into base and returns a new map. Nested JSON
// objects merge recursively with override keys winning; every other value
// kind (arrays included) is replaced wholesale. Neither input is mutated.
func Merge(base, override map[string]any) map[string]any {
	out := make(map[string]any, len(base)+len(override))
	for k, v := range base {
		out[k] = v
	}

	for k, v := range override {
		ov, okOver := v.(map[string]any)
		bv, okBase := out[k].(map[string]any)
		if okOver && okBase {
			out[k] = Merge(bv, ov)
			continue
		}
		out[k] = v
	}
	return out
}
