package main

import (
	"valkey-health/cmd"
)

func main() {
	cmd.Execute()
}
