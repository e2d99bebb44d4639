package main

import "olysched/cli"

func main() {
	cli.Execute()
}
