package main

import "yatube/cmd"

func main() {
	cmd.Execute()
}
