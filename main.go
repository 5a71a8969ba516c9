package main

import "ddcswitch/cmd"

func main() {
	cmd.Execute()
}
