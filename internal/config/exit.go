package config

import (
	"fmt"
	"os"
)

// Exitf reports a startup or session failure, such as a bad SNOWMAN_UI or
// an empty word bank, on stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
