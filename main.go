package main

import "train-xchange/cmd"

func main() {
	cmd.Execute()
}
