package main

import (
	"os"

	"github.com/saanvi-kanodia/internship-chatbot/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
