package main

import "limeal.fr/launchyargs/cmd"

func main() {
	cmd.Execute()
}
