// Command htmlshape is the CLI entry point for the htmlshape engine.
package main

import cmd "github.com/htmlshape/htmlshape/internal/cli"

func main() {
	cmd.Execute()
}
