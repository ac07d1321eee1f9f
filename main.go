package main

import "github.com/evm-tools/calldecode/cmd"

func main() {
	cmd.Execute()
}
