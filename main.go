package main

import "github.com/theirongolddev/sbudget/cmd"

func main() {
	cmd.Execute()
}
