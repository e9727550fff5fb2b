package main

import "github.com/FluidXR/lockboxctl/cmd"

func main() {
	cmd.Execute()
}
