package main

import "github.com/fieldsense/fieldsense/cmd"

func main() {
	cmd.Execute()
}
