// Copyright 2015, David Howden
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
The scan tool walks a song library, builds a cache file, and reports any
folder it had to skip.
*/
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	songcache "github.com/ThaCheeseBun/cloud-hero"
)

var (
	root        string
	profileFlag string
	out         string
	jsonReport  bool
)

var usage = func() {
	fmt.Fprintf(os.Stderr, "usage: %s -root DIR -out FILE [flags]\n", os.Args[0])
	flag.PrintDefaults()
}

func init() {
	flag.StringVar(&root, "root", "", "song library root to scan")
	flag.StringVar(&profileFlag, "profile", "local", "cache profile: local or cloud")
	flag.StringVar(&out, "out", "", "cache file to write")
	flag.BoolVar(&jsonReport, "json", false, "print the scan diagnostics as JSON instead of a plain summary")

	flag.Usage = usage
}

func main() {
	flag.Parse()

	if root == "" || out == "" {
		usage()
		os.Exit(1)
	}

	profile, err := songcache.ParseProfile(profileFlag)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	rep := songcache.NewReporter(os.Stderr)
	entries, err := songcache.Scan(root, profile, rep)
	if err != nil {
		fmt.Println("error scanning:", err)
		os.Exit(1)
	}

	f, err := os.Create(out)
	if err != nil {
		fmt.Println("error creating cache file:", err)
		os.Exit(1)
	}
	defer f.Close()

	if err := songcache.WriteCache(f, entries, profile); err != nil {
		fmt.Println("error writing cache:", err)
		os.Exit(1)
	}

	if jsonReport {
		b, err := json.MarshalIndent(rep.Diagnostics(), "", "  ")
		if err != nil {
			fmt.Println("error marshalling diagnostics:", err)
			os.Exit(1)
		}
		fmt.Println(string(b))
		return
	}

	fmt.Printf("scanned %v: %d entries written, %d diagnostics\n", root, len(entries), len(rep.Diagnostics()))
}
