package main

import (
	"os"

	"ftcc/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
