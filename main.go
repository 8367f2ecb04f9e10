package main

import "github.com/neo/pwmeter/cmd"

func main() {
	cmd.Execute()
}
