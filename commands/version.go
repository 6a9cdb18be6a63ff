package commands

import "fmt"

var version = "dev"

type VersionCommand struct{}

func (command *VersionCommand) Execute(args []string) error {
	fmt.Println(version)
	return nil
}
