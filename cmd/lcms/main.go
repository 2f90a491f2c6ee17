package main

import "lcms/cmd/lcms/cmd"

func main() {
	cmd.Execute()
}
