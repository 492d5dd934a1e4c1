package main

import (
	"log"

	"github.com/YSWikcramatantri/Official-Website/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Fatal(err)
	}
}
