package main

import "github.com/avelis/countdowntab/cmd"

func main() {
	cmd.Execute()
}
