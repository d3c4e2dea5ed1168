package main

import (
	"context"
	"os"

	"github.com/fatih/color"
	"github.com/spudtrooper/instacompare/compare"
	"github.com/spudtrooper/instacompare/instagram"
	"github.com/spudtrooper/instacompare/log"
)

// Distinct exit codes per error kind so scripts can branch on the outcome.
const (
	exitOK           = 0
	exitUnexpected   = 1
	exitFileNotFound = 2
	exitMalformed    = 3
)

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case instagram.IsNotFound(err):
		return exitFileNotFound
	case instagram.IsMalformed(err):
		return exitMalformed
	}
	return exitUnexpected
}

func reportError(err error) {
	x := color.RedString("✗")
	switch {
	case instagram.IsNotFound(err):
		log.Printf("%s error: %v", x, err)
		log.Println("make sure you have:")
		log.Println("  1. requested your Instagram data (Settings → Privacy → Download Your Information)")
		log.Println("  2. extracted the ZIP file")
		log.Println("  3. placed the followers_and_following folder in the directory you run from")
	case instagram.IsMalformed(err):
		log.Printf("%s error: %v", x, err)
		log.Println("the JSON files may be corrupted; try re-downloading your Instagram data")
	default:
		log.Printf("%s unexpected error: %v", x, err)
	}
}

func main() {
	err := compare.Main(context.Background())
	if err != nil {
		reportError(err)
	}
	os.Exit(exitCode(err))
}
