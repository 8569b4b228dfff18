package main

import (
	"list-root/cli"
)

func main() {
	cli.Start()
}
