// main is the entry point of the ransomready CLI.
package main

import (
	"github.com/huangsam/ransomready/cmd"
	"github.com/huangsam/ransomready/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Command failed", err)
	}
}
