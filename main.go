package main

import "github.com/pders01/slidedraft/cmd"

func main() {
	cmd.Execute()
}
