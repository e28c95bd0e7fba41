//go:build ignore

package main

import (
	"fmt"
	"os"

	"github.com/virtui/virtui/internal/domxml"
)

// Renders a saved domain XML descriptor the way the dashboard would.
// Useful when a guest's detail panel looks wrong: dump the descriptor
// with `virsh dumpxml <name> > guest.xml` and feed it through here.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: dumpsummary <descriptor.xml>")
		fmt.Println("Example: dumpsummary captures/web-frontend.xml")
		os.Exit(1)
	}

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Printf("Error reading file: %v\n", err)
		os.Exit(1)
	}

	res, sum := domxml.Parse(string(data))

	fmt.Printf("VCPUs:  %s\n", orNA(res.VCPUs))
	fmt.Printf("Memory: %s\n", orNA(res.Memory))
	fmt.Println()
	fmt.Println(sum.Render())
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
