package cmd

import (
	"flag"

	"github.com/etnz/budget/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// flagValues predicts the values of flags that take one of a few words.
var flagValues = map[string]complete.Predictor{
	"type":   predict.Set{"expense", "income"},
	"pay":    predict.Set{"online", "cash"},
	"format": predict.Set{"csv", "xlsx"},
	"o":      predict.Files("*"),
	"set":    predict.Something,
}

// Completion describes the command line of bflow for shell completion.
func Completion() *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: map[string]complete.Predictor{},
	}
	flag.CommandLine.VisitAll(func(f *flag.Flag) {
		root.Flags[f.Name] = predict.Something
	})
	if root.Flags["data-dir"] != nil {
		root.Flags["data-dir"] = predict.Dirs("*")
	}

	for _, c := range Commands {
		fs := flag.NewFlagSet(c.Cmd.Name(), flag.ContinueOnError)
		c.Cmd.SetFlags(fs)
		sub := &complete.Command{Flags: map[string]complete.Predictor{}}
		fs.VisitAll(func(f *flag.Flag) {
			p, ok := flagValues[f.Name]
			if !ok {
				p = predict.Something
			}
			sub.Flags[f.Name] = p
		})
		root.Sub[c.Cmd.Name()] = sub
	}

	root.Sub["special"].Args = predict.Set{"list", "add", "rm"}
	root.Sub["invest"].Args = predict.Set{"list", "add", "rm"}
	root.Sub["topic"].Args = predict.Set(append(docs.Names(), docs.All))
	return root
}
