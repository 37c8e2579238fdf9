package main

import "github.com/kasuboski/mediagroup/cmd"

func main() {
	cmd.Execute()
}
