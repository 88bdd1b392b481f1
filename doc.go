// Package simplearg dispatches command line arguments to handlers declared
// in a table of parameters. Each handler consumes as many of the following
// arguments as it needs, with typed extraction and error reporting.
//
// For example:
//  type opts struct {
//      Level uint
//      Name  string
//  }
//  func (o *opts) Set(name string, args *simplearg.Arguments) bool {
//      args.SetErrors(name + " ")
//      return args.GetAll(&o.Level, &o.Name)
//  }
//  var o opts
//  params := simplearg.Params{
//      {Name: "set", Description: "set level and name", Aliases: "-s",
//          Handler: simplearg.Method(&o, "Set")},
//  }
//  args := simplearg.New(os.Args[1:])
//  if !args.Parse(params) {
//      log.Fatal(args.Errors())
//  }
//
// A parameter whose name ends in '=' takes an inline value: "--level=3" is
// dispatched to "--level=" with "3" as the next argument. Tokenize splits a
// text buffer, such as the contents of a file, into arguments in place.
package simplearg
