package main

import "github.com/kavia-common/simple-qa-assistant-34089-34098/internal/commands"

func main() {
	commands.Execute()
}
