package main

import "github.com/lumavid/veogen/cmd/veogen/cli"

func main() {
	cli.Execute()
}
