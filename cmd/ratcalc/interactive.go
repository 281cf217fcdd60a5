package main

import (
	"fmt"
	"strings"

	"github.com/joeycumines/go-prompt"
	pstrings "github.com/joeycumines/go-prompt/strings"
	"github.com/joeycumines/go-rational/bignum"
)

var descriptions = map[string]string{
	`abs`:    `absolute value`,
	`approx`: `round to digits decimal places, via float64`,
	`cos`:    `cosine, approximated`,
	`exp`:    `e**x, approximated`,
	`inv`:    `reciprocal`,
	`max`:    `greatest of one or more values`,
	`min`:    `least of one or more values`,
	`neg`:    `negation`,
	`pow`:    `x**k, approximated`,
	`round`:  `round to prec decimal places, half to even`,
	`sqrt`:   `square root, approximated`,
	`mode`:   `show or change the mode, safe or experimental`,
	`exit`:   `end the session`,
}

// interactive runs a prompt until exit is entered, or input ends.
func (x *calculator) interactive() {
	p := prompt.New(
		x.execute,
		prompt.WithPrefix(`>>> `),
		prompt.WithTitle(`ratcalc`),
		prompt.WithCompleter(completer),
		prompt.WithExitChecker(func(in string, breakline bool) bool {
			return breakline && isExit(in)
		}),
	)
	p.Run()
}

// execute handles a line of interactive input, printing errors rather than
// relying on logs.
func (x *calculator) execute(in string) {
	in = strings.TrimSpace(in)
	switch {
	case in == `` || isExit(in):
		return
	case in == `mode`:
		_, _ = fmt.Fprintln(x.stdout, x.engine.Mode)
		return
	case strings.HasPrefix(in, `mode `):
		mode, err := bignum.ParseMode(strings.TrimPrefix(in, `mode `))
		if err != nil {
			_, _ = fmt.Fprintf(x.stdout, "error: %v\n", err)
			return
		}
		x.engine.Mode = mode
		return
	}
	v, err := x.engine.Eval(in)
	if err != nil {
		_, _ = fmt.Fprintf(x.stdout, "error: %v\n", err)
		return
	}
	_, _ = fmt.Fprintln(x.stdout, v)
}

func isExit(in string) bool {
	in = strings.TrimSpace(in)
	return in == `exit` || in == `quit`
}

func completer(in prompt.Document) ([]prompt.Suggest, pstrings.RuneNumber, pstrings.RuneNumber) {
	endIndex := in.CurrentRuneIndex()
	w := in.GetWordBeforeCursor()
	startIndex := endIndex - pstrings.RuneCountInString(w)
	return suggest(in.TextBeforeCursor()), startIndex, endIndex
}

// suggest completes the first word, only.
func suggest(before string) []prompt.Suggest {
	before = strings.TrimLeft(before, " \t")
	if strings.ContainsAny(before, " \t") {
		return nil
	}
	names := append(bignum.Functions(), `mode`, `exit`)
	s := make([]prompt.Suggest, 0, len(names))
	for _, name := range names {
		s = append(s, prompt.Suggest{Text: name, Description: descriptions[name]})
	}
	return prompt.FilterHasPrefix(s, before, true)
}
