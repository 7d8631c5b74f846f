package main

import "github.com/ib-77/ropasync/internal/cli"

func main() {
	cli.Execute()
}
