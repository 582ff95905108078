// Command js2p8 converts a PICO-8 JavaScript web export back into a .p8
// cartridge text file.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/woozymasta/js2p8"
)

func main() {
	outPath := flag.String("o", "", "output path (default: cart name from the export)")
	plain := flag.Bool("plain", false, "write high code bytes as \\xNN escapes instead of button glyphs")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <game.js>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	src, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	name, rom, err := js2p8.ExtractROM(src)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cart, err := js2p8.ParseROM(rom)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	opts := js2p8.DefaultOptions()
	if *plain {
		opts = js2p8.PlainOptions()
	}

	p8, err := cart.EncodeP8(opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *outPath != "" {
		name = *outPath
	}

	if err := os.WriteFile(name, p8, 0o644); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("Signature: % x\n", cart.Signature)
	fmt.Printf("Code size: %d bytes\n", len(cart.Code))
	fmt.Printf("Saved in %s\n", name)
}
