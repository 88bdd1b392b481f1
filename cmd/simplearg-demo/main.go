package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/anacrolix/simplearg"
)

type demo struct {
	u      uint
	i      int16
	s      string
	params simplearg.Params
}

func (d *demo) foo(name string, args *simplearg.Arguments) bool {
	args.SetErrors(name + " ")
	if !args.GetAll(&d.u, &d.s, &d.i) {
		return false
	}
	fmt.Println("Got:", name, d.u, d.s, d.i)
	return true
}

func (d *demo) option(name string, args *simplearg.Arguments) bool {
	args.SetErrors(name + " ")
	if !args.GetAll(&d.s) {
		return false
	}
	fmt.Printf("Got: %s%s\n", name, d.s)
	return true
}

func (d *demo) bar(name string, args *simplearg.Arguments) bool {
	args.SetErrors(name + " ")
	if !args.GetAll(&d.u, &d.s) {
		return false
	}
	fmt.Println("Got:", name, d.u, d.s)
	return true
}

func (d *demo) dash(name string, _ *simplearg.Arguments) bool {
	fmt.Println("Got:", name)
	return true
}

// Reads more arguments from a file, one or more per line, with # comments.
func (d *demo) file(name string, args *simplearg.Arguments) bool {
	var path string
	args.SetErrors(name + " ")
	if !args.Get(&path) {
		return args.Fail("expects a path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return args.Fail("%s", err)
	}
	fileArgs := simplearg.FromTokens(simplearg.Tokenize(b, simplearg.DefaultComment))
	if fileArgs.Empty() {
		return true
	}
	if !fileArgs.Parse(d.params) {
		return args.Fail("%s: %s", path, fileArgs.Errors())
	}
	return true
}

func (d *demo) help(string, *simplearg.Arguments) bool {
	fmt.Println("Usage:")
	simplearg.WriteUsage(os.Stdout, d.params)
	return true
}

func newDemo() *demo {
	d := &demo{}
	d.params = simplearg.Params{
		{Name: "--option=", Description: "a parameter with one option", Handler: simplearg.HandlerFunc(d.option)},
		{Name: "foo", Description: "a foo parameter", Aliases: "f", Handler: simplearg.HandlerFunc(d.foo)},
		{Name: "bar", Description: "a bar parameter", Aliases: "b ba bbar", Handler: simplearg.HandlerFunc(d.bar)},
		{Name: "-", Description: "a dash parameter", Handler: simplearg.HandlerFunc(d.dash)},
		{Name: "--file=", Description: "reads more parameters from a file", Handler: simplearg.HandlerFunc(d.file)},
		{Name: "help", Description: "prints this help", Aliases: "--help -h -?", Handler: simplearg.HandlerFunc(d.help)},
	}
	return d
}

func main() {
	d := newDemo()
	args := simplearg.New(os.Args[1:])
	if args.Empty() {
		d.help("", args)
		return
	}
	if !args.Parse(d.params, simplearg.StopAt("--")) {
		color.New(color.FgRed).Fprintln(os.Stderr, args.Errors())
		os.Exit(1)
	}
	if !args.Contains("--") {
		return
	}
	args.Next()
	var (
		val uint
		str string
	)
	args.SetErrors("positional parameters ")
	if !args.GetAll(&val, &str) {
		color.New(color.FgRed).Fprintln(os.Stderr, args.Errors())
		os.Exit(1)
	}
	fmt.Printf("Positional parameters: %d,%s\n", val, str)
}
