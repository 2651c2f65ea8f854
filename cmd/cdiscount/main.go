// Package main is the entry point for the cdiscount CLI.
package main

import (
	"github.com/donaldgifford/cdiscount-sdk/cmd/cdiscount/cmd"
)

func main() {
	cmd.Execute()
}
