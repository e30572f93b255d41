package main

import "github.com/livp123/monolog/cmd/monolog/commands"

func main() {
	commands.Execute()
}
