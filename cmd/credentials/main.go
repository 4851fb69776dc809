// Command credentials prints one batch of credentials seed data and its SQL inserts.
package main

import (
	"fmt"
	"os"

	"github.com/zarlcorp/core/pkg/zapp"
	"github.com/zarlcorp/zseed/internal/batch"
	"github.com/zarlcorp/zseed/internal/cli"
)

func main() {
	app := zapp.New(zapp.WithName("credentials"))

	if err := cli.RunStandalone(os.Stdout, batch.Credentials); err != nil {
		fmt.Fprintf(os.Stderr, "credentials: %v\n", err)
		_ = app.Close()
		os.Exit(1)
	}

	_ = app.Close()
}
