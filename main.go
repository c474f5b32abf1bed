package main

import "wiring-guard/cmd"

func main() {
	cmd.Execute()
}
