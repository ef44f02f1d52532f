package main

import "github.com/apfromiit/chalice/cmd"

func main() {
	cmd.Execute()
}
