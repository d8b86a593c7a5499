// dynstates - Vulkan registry enum inspector
// Lists the merged members of a registry enum group
package main

import (
	"flag"
	"fmt"
	"os"

	vvl "github.com/kearwood/Vulkan-ValidationLayers"
	"github.com/kearwood/Vulkan-ValidationLayers/dynstate"
	"github.com/kearwood/Vulkan-ValidationLayers/vkxml"
)

var (
	groupName = flag.String("group", vvl.DynamicStateGroup, "enum group to list")
	apiName   = flag.String("api", vkxml.DefaultAPI, "registry api variant")
)

func main() {
	flag.Parse()
	if flag.NArg() < 1 {
		fmt.Println("Usage: dynstates [options] <vk.xml>")
		return
	}
	path := flag.Arg(0)

	reg, err := vkxml.LoadFile(path, vkxml.Options{API: *apiName})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	group, ok := reg.Group(*groupName)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no %s group in %s\n", *groupName, path)
		os.Exit(1)
	}

	aliases := 0
	for _, m := range group.Members {
		if m.IsAlias() {
			aliases++
		}
	}

	fmt.Printf("; File: %s\n", path)
	fmt.Printf("; Group: %s\n", group.Name)
	fmt.Printf("; Members: %d (%d aliases)\n", len(group.Members), aliases)
	fmt.Println()

	if group.Name != vvl.DynamicStateGroup {
		for _, m := range group.Members {
			switch {
			case m.IsAlias():
				fmt.Printf("  %-60s alias %s\n", m.Name, m.Alias)
			case m.Value != "":
				fmt.Printf("  %-60s %s\n", m.Name, m.Value)
			default:
				fmt.Printf("  %s\n", m.Name)
			}
		}
		return
	}

	// The dynamic state view shows the compact numbering the generator
	// assigns, with the registry name alongside.
	set := vvl.Collect(reg)
	for _, s := range set.States() {
		fmt.Printf("%4d  %-52s %s\n", s.Value, s.Local, s.Original)
	}
	fmt.Printf("%4d  %s\n", set.Count(), dynstate.CountName)

	if aliases > 0 {
		fmt.Println()
		for _, m := range group.Members {
			if m.IsAlias() {
				fmt.Printf("; alias %s -> %s\n", m.Name, m.Alias)
			}
		}
	}
}
