// migrate applies the embedded SQL migrations; run with go run ./cmd/migrate -direction up|down.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/GoSim-25-26J-441/taskboard-backend/config"
	"github.com/GoSim-25-26J-441/taskboard-backend/internal/storage/postgres"
)

func main() {
	direction := flag.String("direction", "up", "Migration direction: up or down")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	if cfg.Database.Driver != config.StorageDriverPostgres {
		fmt.Fprintln(os.Stderr, "STORAGE_DRIVER is not postgres; nothing to migrate")
		os.Exit(1)
	}

	if err := postgres.Migrate(postgres.URL(&cfg.Database), *direction); err != nil {
		fmt.Fprintln(os.Stderr, "migrate:", err)
		os.Exit(1)
	}
	fmt.Println("migrations:", *direction, "complete")
}
