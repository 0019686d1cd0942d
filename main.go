package main

import "mocklet/cmd"

func main() {
	cmd.Execute()
}
