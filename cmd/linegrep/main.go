// cmd/linegrep/main.go
package main

import (
	cmd "github.com/mwiater/linegrep/internal/commands"
)

// main starts the linegrep CLI application by delegating to the
// cobra root command defined in the linegrep package. It does not
// take any arguments and does not return a value.
func main() {
	cmd.Execute()
}
