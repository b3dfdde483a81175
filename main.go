package main

import (
	"os"

	"github.com/ocluk/caolan/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
