// cmd/ggscaf/main.go
package main

import (
	"os"

	"ggscaf/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
