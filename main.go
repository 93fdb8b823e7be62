package main

import "codebundle/cmd"

func main() {
	cmd.Execute()
}
