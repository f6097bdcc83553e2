package main

import "path-cache/cmd"

func main() {
	cmd.Execute()
}
