package main

import "github.com/kushgbisen/upeschedule/cmd"

func main() {
	cmd.Execute()
}
