package main

import "github.com/remaimber-it/sattutor/internal/cli"

func main() {
	cli.Execute()
}
