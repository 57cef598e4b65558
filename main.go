// Package main is the entry point for typetour.
package main

import (
	"github.com/samber/lo"
	"github.com/typetour/typetour/cmd"
	"github.com/typetour/typetour/config"
	"github.com/typetour/typetour/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
