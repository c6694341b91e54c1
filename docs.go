package main

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/seqtools/harvest/cmd"
	"github.com/spf13/cobra/doc"
)

// https://pmarsceill.github.io/just-the-docs/docs/navigation-structure/
const rootDoc = `---
layout: default
title: %s
nav_order: %d
has_children: true
permalink: /
---
`

// child command without children
const childDoc = `---
layout: default
title: %s
parent: %s
nav_order: %d
---
`

// meta is for describing the position/info for a command doc page
type meta struct {
	title    string
	navOrder int
	parent   string
}

// map from the base Markdown file name to its build meta
var metaMap = map[string]meta{
	"harvest": {
		title:    "harvest",
		navOrder: 0,
	},
	"harvest_dna": {
		title:    "dna",
		navOrder: 0,
		parent:   "harvest",
	},
	"harvest_aa": {
		title:    "aa",
		navOrder: 1,
		parent:   "harvest",
	},
	"harvest_intron": {
		title:    "intron",
		navOrder: 2,
		parent:   "harvest",
	},
	"harvest_supercontig": {
		title:    "supercontig",
		navOrder: 3,
		parent:   "harvest",
	},
}

// makeDocs parses the commands and outputs Markdown documentation files
func makeDocs() {
	if err := doc.GenMarkdownTreeCustom(cmd.RootCmd, "./docs", filePrepender, linkHandler); err != nil {
		fmt.Println(err.Error())
	}
}

// filePrepender adds YAML headings that are required by the just-the-docs theme
// https://github.com/spf13/cobra/blob/master/doc/md_docs.md
func filePrepender(filename string) string {
	name := filepath.Base(filename)
	base := strings.TrimSuffix(name, path.Ext(name))
	m := metaMap[base]

	if m.parent == "" {
		return fmt.Sprintf(rootDoc, m.title, m.navOrder)
	}
	return fmt.Sprintf(childDoc, m.title, m.parent, m.navOrder)
}

// linkHandler returns the URL to a documentation page
func linkHandler(filename string) string {
	name := filepath.Base(filename)
	base := strings.TrimSuffix(name, path.Ext(name))

	if base == "harvest" {
		return "/"
	}
	return base
}
