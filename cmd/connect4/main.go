package main

import "github.com/lazygeek007/connect-four/internal/cli"

func main() {
	cli.Execute()
}
