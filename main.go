package main

import "sync-actions/cmd"

func main() {
	cmd.Execute()
}
