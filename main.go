package main

import "catalog-browser/cmd"

func main() {
	cmd.Execute()
}
