package docgen

import (
	"github.com/yamlkit/yamldoc/ir"
)

// MustDocument is Document for values known to serialize, panicking
// otherwise.
func MustDocument(value, description *ir.Node) string {
	s, err := Document(value, description)
	if err != nil {
		panic(err)
	}
	return s
}
