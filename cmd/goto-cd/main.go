package main

import "github.com/wwwyo/goto-cd/internal/cli"

func main() {
	cli.Execute()
}
