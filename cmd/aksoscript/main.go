// Command aksoscript evaluates and analyzes akso-script definition graphs.
package main

import (
	"os"

	"github.com/cwbudde/go-aksoscript/cmd/aksoscript/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
