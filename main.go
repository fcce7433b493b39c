package main

import "guestjot/cmd"

func main() {
	cmd.Execute()
}
