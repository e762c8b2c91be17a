package main

import (
	"fmt"
	"os"
	"strings"

	"nib/config"
	"nib/editor"
)

const usage = `usage: nib [-r | -t] [file ...]

  -r    open files read-only
  -t    truncate files before opening
  -h    show this help
`

func main() {
	var opts editor.Options
	var paths []string

	for _, arg := range os.Args[1:] {
		switch arg {
		case "-r", "--readonly":
			opts.ReadOnly = true
		case "-t", "--truncate":
			opts.Truncate = true
		case "-h", "--help":
			fmt.Print(usage)
			return
		default:
			if strings.HasPrefix(arg, "-") {
				fmt.Fprintf(os.Stderr, "nib: unknown flag %s\n%s", arg, usage)
				os.Exit(2)
			}
			paths = append(paths, arg)
		}
	}

	if opts.ReadOnly && opts.Truncate {
		fmt.Fprintln(os.Stderr, "nib: -r and -t are mutually exclusive")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "nib:", err)
		os.Exit(1)
	}

	if err := editor.New(cfg, opts).Run(paths); err != nil {
		fmt.Fprintln(os.Stderr, "nib:", err)
		os.Exit(1)
	}
}
