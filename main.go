package main

import "github.com/chrisdamba/burgerbar/cmd"

func main() {
	cmd.Execute()
}
