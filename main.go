package main

import "github.com/TWRT/form-integrations/internal/cli"

func main() {
	cli.Execute()
}
