// Command vgrepeater inserts repeaters into a routed signal tree using
// the Van Ginneken dynamic-programming algorithm.
package main

import "github.com/vgrepeater/vgrepeater/cmd/vgrepeater/cmd"

func main() {
	cmd.Execute()
}
