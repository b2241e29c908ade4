package main

import "github.com/medora-health/medora_backend/cmd"

func main() {
	cmd.Execute()
}
