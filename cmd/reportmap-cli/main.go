package main

import "reportmap/cmd/reportmap-cli/cmd"

func main() {
	cmd.Execute()
}
