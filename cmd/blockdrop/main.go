// Command blockdrop plays the falling-block game in a window, or runs it
// headless with a random autopilot and reports on the run.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
