// Copyright 2015, David Howden
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
The inspect tool reads a cache file and prints a summary of its entries.
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
	in          string
	profileFlag string
	jsonDump    bool
)

var usage = func() {
	fmt.Fprintf(os.Stderr, "usage: %s -in FILE [flags]\n", os.Args[0])
	flag.PrintDefaults()
}

func init() {
	flag.StringVar(&in, "in", "", "cache file to read")
	flag.StringVar(&profileFlag, "profile", "local", "cache profile: local or cloud")
	flag.BoolVar(&jsonDump, "json", false, "print every entry as JSON instead of a summary")

	flag.Usage = usage
}

func main() {
	flag.Parse()

	if in == "" {
		usage()
		os.Exit(1)
	}

	profile, err := songcache.ParseProfile(profileFlag)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	f, err := os.Open(in)
	if err != nil {
		fmt.Println("error opening cache file:", err)
		os.Exit(1)
	}
	defer f.Close()

	header, entries, err := songcache.ReadCacheWithHeader(f, profile)
	if err != nil {
		fmt.Println("error reading cache:", err)
		os.Exit(1)
	}

	if jsonDump {
		b, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			fmt.Println("error marshalling entries:", err)
			os.Exit(1)
		}
		fmt.Println(string(b))
		return
	}

	fmt.Printf("version: %d\n", header.Version)
	fmt.Printf("header checksum: %x\n", header.Checksum)
	fmt.Printf("entries: %d\n\n", len(entries))

	for _, e := range entries {
		fmt.Printf("%s - %s [%s]\n", e.Metadata[songcache.MetaArtist], e.Metadata[songcache.MetaName], e.FolderPath)
	}
}
