package main

import "github.com/ArnaudCalmettes/png2grid/cmd"

func main() {
	cmd.Execute()
}
