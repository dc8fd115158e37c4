package main

import "github.com/landmarket/landmarket-cli/internal/cli"

func main() {
	cli.Execute()
}
