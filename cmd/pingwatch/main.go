package main

import "github.com/hamed0406/pingwatch/internal/cli"

func main() {
	cli.Execute()
}
