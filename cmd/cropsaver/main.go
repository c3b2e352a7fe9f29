// @title Crop Saver API
// @version 1.0
// @description Read-only inspection of crop tracking tables, save slots and crop events.
// @BasePath /
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
