/*
Package launchericon draws the Medistock launcher icon at every Android mipmap
density and writes it in the layout expected by the app resources.

The package provides a command line interface as well. To check the supported flags type:

	$ launchericon --help

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"context"
		"fmt"

		"github.com/medistock/launchericon"
	)

	func main() {
		ops := launchericon.NewOps(launchericon.DefaultConfig())

		sum, err := ops.Execute(context.Background())
		if err != nil {
			fmt.Printf("Error generating the icons: %s", err.Error())
			return
		}
		fmt.Println(sum)
	}
*/
package launchericon
