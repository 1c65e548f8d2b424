package main

import "github.com/alexiusacademia/despacho/cmd"

func main() {
	cmd.Execute()
}
