package main

import (
	"fmt"
	"os"

	"ledgerlens/extractcore/cmd/extract"
	"ledgerlens/extractcore/cmd/root"
)

func init() {
	root.Init()
	root.Cmd.AddCommand(extract.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
