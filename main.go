// Package main is the entry point of discovertrailraces, the Cost Per KM
// website and its operator commands.
package main

import (
	"github.com/witoldexec80th12/discovertrailraces/cmd"
)

func main() {
	cmd.Execute()
}
