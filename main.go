package main

import "hideout-tracker/cmd"

func main() {
	cmd.Execute()
}
