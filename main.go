package main

import (
	"fmt"
	"os"

	"mwirth/statement-csv/cmd/classify"
	"mwirth/statement-csv/cmd/extract"
	"mwirth/statement-csv/cmd/formats"
	"mwirth/statement-csv/cmd/label"
	"mwirth/statement-csv/cmd/process"
	"mwirth/statement-csv/cmd/root"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(extract.Cmd)
	root.Cmd.AddCommand(label.Cmd)
	root.Cmd.AddCommand(process.Cmd)
	root.Cmd.AddCommand(formats.Cmd)
	root.Cmd.AddCommand(classify.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
