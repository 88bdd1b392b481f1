package simplearg

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/anacrolix/missinggo"
)

type usage struct {
	bullet      string
	aliasLabel  string
	description string
}

type usageOpt func(u *usage)

// Separates a parameter's name from its description. Defaults to " - ".
func Bullet(bullet string) usageOpt {
	return func(u *usage) {
		u.bullet = bullet
	}
}

// Introduces the aliases of a parameter. Defaults to "Aliases: ".
func AliasLabel(label string) usageOpt {
	return func(u *usage) {
		u.aliasLabel = label
	}
}

// Writes a description of the program before the parameter list.
func Description(desc string) usageOpt {
	return func(u *usage) {
		u.description = desc
	}
}

func newUsageTabwriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 8, 1, ' ', 0)
}

// WriteUsage lists params in two columns, names on the left and
// descriptions on the right. Parameters with aliases get an extra line
// listing them under the description.
func WriteUsage(w io.Writer, params Params, opts ...usageOpt) {
	u := usage{
		bullet:     " - ",
		aliasLabel: "Aliases: ",
	}
	for _, opt := range opts {
		opt(&u)
	}
	if u.description != "" {
		fmt.Fprint(w, missinggo.Unchomp(u.description))
	}
	tw := newUsageTabwriter(w)
	indent := strings.Repeat(" ", len(u.bullet))
	for _, p := range params {
		fmt.Fprintf(tw, "%s\t%s%s\n", p.Name, u.bullet, p.Description)
		if p.Aliases != "" {
			fmt.Fprintf(tw, "\t%s%s%s\n", indent, u.aliasLabel, p.Aliases)
		}
	}
	tw.Flush()
}
