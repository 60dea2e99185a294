package main

import "github.com/josephlewis42/blsh/cmd"

func main() {
	cmd.Execute()
}
