package main

import "github.com/samhoang/claude-notify/cmd"

func main() {
	cmd.Execute()
}
