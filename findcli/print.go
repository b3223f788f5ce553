package main

import (
	"fmt"

	"github.com/npillmayer/fontfind"
	"github.com/npillmayer/fontfind/inspect"
	"github.com/pterm/pterm"
)

func printEntries(entries []fontfind.FontEntry) {
	pterm.Printf("corpus has %d faces\n", len(entries))
	if len(entries) == 0 {
		return
	}
	pterm.Printf("%-28s %-8s %-10s %-14s %-9s %s\n",
		"Family", "Style", "Weight", "Stretch", "Size", "File")
	for _, e := range entries {
		pterm.Printf("%-28s %-8s %-10s %-14s %-9s %s\n",
			e.Name, e.Style, e.Weight, e.Stretch, e.Size, e.Fname)
	}
}

func printFileInfo(path string) error {
	infos, err := inspect.Properties(path)
	if err != nil {
		return err
	}
	cff, err := inspect.IsOpenTypeCFF(path)
	if err != nil {
		return err
	}
	pterm.Printf("%s: %d face(s), CFF outlines: %v\n", path, len(infos), cff)
	for i, info := range infos {
		pterm.Printf("  [%d] %s  style=%s weight=%s stretch=%s fixed-pitch=%v\n",
			i, info.Family, info.Style, info.Weight, info.Stretch, info.FixedPitch)
	}
	return nil
}

func printHelp() {
	pterm.Println("Commands:")
	pterm.Println("  find <family>[,<family>…] [attributes…]   resolve a font request")
	pterm.Println("  list [afm]                                show the corpus")
	pterm.Println("  info <fontfile>                           inspect one font file")
	pterm.Println("  rebuild                                   re-scan the system fonts")
	pterm.Println("  save                                      write the corpus cache")
	pterm.Println("  quit")
	fmt.Println()
}
