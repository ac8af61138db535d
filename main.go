package main

import "github.com/anandita/storefront/cmd"

func main() {
	cmd.Start()
}
