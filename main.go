package main

import "github.com/jsphweid/stardex/cmd"

func main() {
	cmd.Execute()
}
