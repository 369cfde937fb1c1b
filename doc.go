// Package deepsim scores how closely two structured documents agree. It's
// intended for checking machine-generated documents (eg: JSON written by a
// language model) against a known-good control document of the same schema
//
// Instead of operating on JSON directly, deepsim operates on document trees
// consisting of the go types created by unmarshaling into an interface{},
// which are two complex types:
//   map[string]interface{}
//   []interface{}
// and scalar types:
//   string, bool, nil, float64, json.Number & go's integer types
//
// by operating on native go types deepsim can compare documents encoded in
// different formats, for example a YAML control document and a JSON candidate.
//
// Comparison walks both trees in lock-step. Mappings are matched by key,
// sequences purely by position. Every terminal position, matched or not, is a
// "leaf", and similarity is the percentage of leaves that matched:
//
//   res, err := deepsim.Compare(control, candidate)
//   fmt.Println(res) // 66.67% similar
//
// Positions that don't match are reported as a flat list of Differences,
// each locating itself with a Path
package deepsim
