// Command etchpath turns an image into a single continuous pen path and
// streams it to a JCode plotter.
//
//	etchpath trace photo.png -o photo.jcode --preview preview.png
//	etchpath send photo.jcode --port /dev/ttyUSB0
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "etchpath:", err)
		os.Exit(1)
	}
}
