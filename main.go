package main

import (
	"github.com/notargets/goscat/cmd"
)

func main() {
	cmd.Execute()
}
