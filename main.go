package main

import (
	"github.com/devicelab-dev/appiumqa/pkg/cli"

	// Register the test cases.
	_ "github.com/devicelab-dev/appiumqa/pkg/scenarios"
)

func main() {
	cli.Execute()
}
