package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse bool
	Gomap bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("YAMLDOC_DEBUG_PARSE")
	d.Gomap = boolEnv("YAMLDOC_DEBUG_GOMAP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Gomap() bool {
	return d.Gomap
}
