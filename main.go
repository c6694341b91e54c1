package main

import (
	"github.com/seqtools/harvest/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
