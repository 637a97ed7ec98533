package main

import "polymarket_explorer/cmd/explorer/cmd"

func main() {
	cmd.Execute()
}
