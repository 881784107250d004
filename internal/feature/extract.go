package feature

// Extract maps Solidity source text to a vector over the default schema.
// Deterministic and side-effect free: the same text always yields the
// identical vector.
func Extract(source string) Vector {
	return ExtractWith(source, Schema(DefaultKeywords))
}

// ExtractWith maps source text to a vector over an explicit schema. Every
// definition runs exactly once, in order.
func ExtractWith(source string, defs []Definition) Vector {
	keys := make([]string, 0, len(defs))
	values := make(map[string]int, len(defs))
	for _, def := range defs {
		keys = append(keys, def.Name)
		values[def.Name] = def.Extract(source)
	}
	return Vector{keys: keys, values: values}
}
