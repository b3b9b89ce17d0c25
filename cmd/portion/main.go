package main

import "github.com/mchmarny/portion/pkg/cli"

func main() {
	cli.Execute()
}
