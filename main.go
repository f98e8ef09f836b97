package main

import "github.com/justbidit/jbi/cmd"

func main() {
	cmd.Execute()
}
