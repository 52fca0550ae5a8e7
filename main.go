package main

import "stashboard-cli/cmd"

func main() {
	cmd.Execute()
}
