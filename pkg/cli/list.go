package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	"github.com/devicelab-dev/appiumqa/pkg/suite"
)

var listCommand = &cli.Command{
	Name:  "list",
	Usage: "List registered test cases",
	Flags: []cli.Flag{
		&cli.StringSliceFlag{
			Name:    "markers",
			Aliases: []string{"m"},
			Usage:   "Only list cases with these markers",
		},
	},
	Action: func(c *cli.Context) error {
		cases := suite.FilterByMarkers(suite.Cases(), c.StringSlice("markers"))

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "CASE\tMARKERS")
		for _, tc := range cases {
			fmt.Fprintf(w, "%s\t%s\n", tc.Name, strings.Join(tc.Markers, ", "))
		}
		return w.Flush()
	},
}
