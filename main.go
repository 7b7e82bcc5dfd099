package main

import "github.com/theirongolddev/dledger/cmd"

func main() {
	cmd.Execute()
}
