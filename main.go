package main

import (
	"github.com/byxorna/coursebook/cmd"
)

func main() {
	cmd.Execute()
}
