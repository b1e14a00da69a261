// Copyright IBM Corp. 2023, 2025

package main

import "github.com/hashicorp/go-idx/cmd"

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// main start go-idx cli `idxinfo`
func main() {
	cmd.Run(version, commit, date)
}
