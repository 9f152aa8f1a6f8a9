// Pocket cube simulator - CLI application for scrambling, recording, and analyzing 2x2 solves.
package main

import (
	"github.com/SeamusWaldron/pocketcube/internal/cli"
)

func main() {
	cli.Execute()
}
