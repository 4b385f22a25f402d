// The server binary runs the HTTP server directly, without the CLI wrapper.
// Deployments that only ever serve traffic build this one.
package main

import (
	"log"

	"github.com/jackmarxreacher-creator/rby-sub000/internal/server"

	_ "github.com/jackmarxreacher-creator/rby-sub000/database/migrations"
)

func main() {
	if err := server.Start(); err != nil {
		log.Fatal(err)
	}
}
