package main

import "embedfix/cmd"

func main() {
	cmd.Execute()
}
