package cli

import "github.com/fatih/color"

func success(msg string) {
	printlnFn(color.GreenString("✓") + " " + msg)
}

func failure(msg string) {
	printlnFn(color.RedString("✗") + " " + msg)
}

func hint(msg string) {
	printlnFn(color.CyanString("→") + " " + msg)
}
