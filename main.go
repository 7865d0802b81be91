package main

import "github.com/iburimskiy/backdrop/cmd"

func main() {
	cmd.Execute()
}
