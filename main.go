package main

import "metabuild-hub/cmd"

func main() {
	cmd.Execute()
}
