package main

import "taskroll/cmd/taskroll/root"

func main() {
	root.Execute()
}
