/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import (
	"github.com/davla/pkmn-3rd-gen-hex/cmd/pkm3hex/cmd"
	"github.com/davla/pkmn-3rd-gen-hex/pkg/di"
)

func main() {
	// Inject the container constructor into cmd package
	cmd.SetContainerFactory(di.NewContainer)

	cmd.Execute()
}
