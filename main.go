package main

import "github.com/gaurav-prasanna/nhsmeds/cmd"

func main() {
	cmd.Execute()
}
