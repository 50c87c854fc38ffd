package main

import "roundbot/internal/cli"

func main() {
	cli.Main()
}
