// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// foldcheck verifies that the canonical runes produced by the fold package
// agree with Unicode simple case folding: every member of a case folding
// orbit must fold to the same rune, that rune must be a member of the orbit,
// and the string functions must agree with strings.EqualFold.
//
// It must be re-run when the Go version (and thus the Unicode version) used
// to build cistring changes.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"
	"golang.org/x/text/unicode/rangetable"

	"github.com/charlievieth/cistring/internal/fold"
)

func init() {
	initLogs()
}

func initLogs() {
	log.SetPrefix("foldcheck: ")
	log.SetFlags(log.Lshortfile)
	log.SetOutput(os.Stdout) // use stdout instead of stderr
}

// A mismatch is a rune that fold.Rune maps incorrectly.
type mismatch struct {
	R     rune
	Got   rune
	Want  rune
	Orbit []rune
}

func (m mismatch) String() string {
	return fmt.Sprintf("fold.Rune(%U) = %U; want: %U (orbit: %U)",
		m.R, m.Got, m.Want, m.Orbit)
}

// orbit returns the simple case folding orbit of r starting with r.
func orbit(r rune) []rune {
	o := []rune{r}
	for f := unicode.SimpleFold(r); f != r; f = unicode.SimpleFold(f) {
		o = append(o, f)
	}
	return o
}

// canonical returns the expected canonical fold of r: the smallest member of
// its orbit, or the lower case letter if that member is ASCII.
func canonical(o []rune) rune {
	m := o[0]
	for _, r := range o[1:] {
		if r < m {
			m = r
		}
	}
	if m < utf8.RuneSelf {
		return unicode.ToLower(m)
	}
	return m
}

func checkRune(r rune) *mismatch {
	o := orbit(r)
	want := canonical(o)
	if got := fold.Rune(r); got != want {
		return &mismatch{R: r, Got: got, Want: want, Orbit: o}
	}
	s := string(r)
	for _, f := range o {
		t := string(f)
		if !fold.Equal(s, t) || fold.Hash(s) != fold.Hash(t) ||
			fold.String(s) != fold.String(t) {
			return &mismatch{R: r, Got: fold.Rune(f), Want: want, Orbit: o}
		}
		if fold.Equal(s, t) != strings.EqualFold(s, t) {
			return &mismatch{R: r, Got: fold.Rune(f), Want: want, Orbit: o}
		}
	}
	return nil
}

// runeTable returns the table of runes to check. If all is true every valid
// rune is included, otherwise only runes with a case mapping.
func runeTable(all bool) *unicode.RangeTable {
	if all {
		return &unicode.RangeTable{
			R32: []unicode.Range32{{Lo: 0, Hi: unicode.MaxRune, Stride: 1}},
		}
	}
	return rangetable.Merge(unicode.Upper, unicode.Lower, unicode.Title,
		unicode.Other_Lowercase, unicode.Other_Uppercase, unicode.Symbol)
}

func countRunes(rt *unicode.RangeTable) int {
	n := 0
	rangetable.Visit(rt, func(r rune) {
		if utf8.ValidRune(r) {
			n++
		}
	})
	return n
}

// check checks every valid rune in rt and returns all mismatches.
func check(rt *unicode.RangeTable, bar *progressbar.ProgressBar) []mismatch {
	const batch = 4096
	var errs []mismatch
	n := 0
	rangetable.Visit(rt, func(r rune) {
		if !utf8.ValidRune(r) {
			return
		}
		if m := checkRune(r); m != nil {
			errs = append(errs, *m)
		}
		if n++; n == batch {
			if err := bar.Add(n); err != nil {
				log.Panicf("error updating progress bar: %v", err)
			}
			n = 0
		}
	})
	if err := bar.Add(n); err != nil {
		log.Panicf("error updating progress bar: %v", err)
	}
	if err := bar.Finish(); err != nil {
		log.Panicf("error finishing progress bar: %v", err)
	}
	return errs
}

func newProgressBar(w *os.File, max int) *progressbar.ProgressBar {
	if term.IsTerminal(int(w.Fd())) {
		return progressbar.Default(int64(max), "checking")
	}
	return progressbar.DefaultSilent(int64(max), "checking")
}

func report(w io.Writer, errs []mismatch, verbose bool) {
	if verbose {
		for _, m := range errs {
			fmt.Fprintln(w, m)
		}
	}
	if len(errs) > 0 {
		fmt.Fprintf(w, "FAIL: %d mismatched runes\n", len(errs))
	} else {
		fmt.Fprintln(w, "PASS")
	}
}

func realMain(args []string) int {
	flags := flag.NewFlagSet("foldcheck", flag.ExitOnError)
	all := flags.Bool("all", false, "check every rune instead of only cased runes")
	verbose := flags.Bool("v", false, "print each mismatched rune")
	flags.Parse(args)

	rt := runeTable(*all)
	total := countRunes(rt)
	log.Printf("Checking %d runes against Unicode %s", total, unicode.Version)

	errs := check(rt, newProgressBar(os.Stdout, total))
	report(os.Stdout, errs, *verbose)
	if len(errs) > 0 {
		return 1
	}
	return 0
}

func main() {
	if code := realMain(os.Args[1:]); code != 0 {
		os.Exit(code)
	}
}
