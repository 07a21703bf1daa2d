package debug

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/yamlkit/yamldoc/docgen"
	"github.com/yamlkit/yamldoc/ir"
)

// Logf writes a debug trace to stderr, rendering *ir.Node arguments as
// documents and generic maps/slices as indented JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Node:
			s, err := docgen.Document(x, nil)
			if err != nil {
				args[i] = fmt.Sprintf("[raw *ir.Node] %v", x)
				continue
			}
			args[i] = s
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
