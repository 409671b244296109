package main

import "github.com/robertgumeny/icongen/cmd"

func main() {
	cmd.Execute()
}
