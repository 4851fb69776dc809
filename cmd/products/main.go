// Command products prints one batch of products seed data and its SQL inserts.
package main

import (
	"fmt"
	"os"

	"github.com/zarlcorp/core/pkg/zapp"
	"github.com/zarlcorp/zseed/internal/batch"
	"github.com/zarlcorp/zseed/internal/cli"
)

func main() {
	app := zapp.New(zapp.WithName("products"))

	if err := cli.RunStandalone(os.Stdout, batch.Products); err != nil {
		fmt.Fprintf(os.Stderr, "products: %v\n", err)
		_ = app.Close()
		os.Exit(1)
	}

	_ = app.Close()
}
