package utils

import (
	"encoding/json"
)

// Remarshal converts between JSON-compatible representations, typically a
// schemaless document and a typed struct.
func Remarshal(input interface{}, output interface{}) (err error) {
	b, err := json.Marshal(input)
	if nil != err {
		return
	}
	return json.Unmarshal(b, output)
}
