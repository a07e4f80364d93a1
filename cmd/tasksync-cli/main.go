package main

import "tasksync/cmd/tasksync-cli/cmd"

func main() {
	cmd.Execute()
}
