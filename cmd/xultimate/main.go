package main

import (
	"github.com/lslk89/xultimate-toolkit/cmd/xultimate/cmd"
)

func main() {
	cmd.Execute()
}
