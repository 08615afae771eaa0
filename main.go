package main

import "github.com/legend-exp/geom-scarf/cli"

func main() {
	cli.Launch()
}
