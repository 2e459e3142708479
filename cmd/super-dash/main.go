package main

import "github.com/lixenwraith/super-dash/cli"

func main() {
	cli.Execute()
}
