package main

import "macaron/cmd/macaron/root"

func main() {
	root.Execute()
}
