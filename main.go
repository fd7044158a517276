package main

import "github.com/Manu343726/tricore/cmd"

func main() {
	cmd.Execute()
}
