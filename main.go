// Command orbit is a habit and goal tracker: trackers hold typed
// entries, goals of ten kinds attach to trackers, and progress is
// evaluated live from the entry history.
package main

import "github.com/papapumpkin/orbit/cmd"

func main() {
	cmd.Execute()
}
