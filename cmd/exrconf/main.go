package main

import "exrconf/cmd"

func main() {
	cmd.Execute()
}
