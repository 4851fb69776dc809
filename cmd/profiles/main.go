// Command profiles prints one batch of profiles seed data and its SQL inserts.
package main

import (
	"fmt"
	"os"

	"github.com/zarlcorp/core/pkg/zapp"
	"github.com/zarlcorp/zseed/internal/batch"
	"github.com/zarlcorp/zseed/internal/cli"
)

func main() {
	app := zapp.New(zapp.WithName("profiles"))

	if err := cli.RunStandalone(os.Stdout, batch.Profiles); err != nil {
		fmt.Fprintf(os.Stderr, "profiles: %v\n", err)
		_ = app.Close()
		os.Exit(1)
	}

	_ = app.Close()
}
