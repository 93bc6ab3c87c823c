package main

import "github.com/isu-meta/marcup/cmd"

func main() {
	cmd.Execute()
}
