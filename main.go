package main

import "cerberus/cmd"

func main() {
	cmd.Execute()
}
