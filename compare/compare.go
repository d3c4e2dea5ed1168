// Package compare runs the follower/following comparison end to end.
package compare

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spudtrooper/goutil/or"
	"github.com/spudtrooper/goutil/sets"
	"github.com/spudtrooper/instacompare/instagram"
	"github.com/spudtrooper/instacompare/log"
	"github.com/spudtrooper/instacompare/report"
	"github.com/spudtrooper/instacompare/util"
)

const (
	defaultInputDir   = "followers_and_following"
	defaultOutputFile = "not_following_back.txt"
	followingFile     = "following.json"
)

// Instagram has shipped the followers list under both names; try in order.
var followersFileCandidates = []string{
	"followers_1.json",
	"followers.json",
}

// NonFollowers returns the usernames in following that are absent from
// followers. The subtraction direction matters: these are the accounts you
// follow that don't follow you back.
func NonFollowers(following, followers sets.StringSet) sets.StringSet {
	res := sets.StringSet{}
	for u := range following {
		if !followers[u] {
			res[u] = true
		}
	}
	return res
}

// resolveFollowersFile returns the first candidate that exists, or the last
// one so the load reports a not-found against a concrete path.
func resolveFollowersFile(dir string) string {
	var path string
	for _, name := range followersFileCandidates {
		path = filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return path
}

func Main(ctx context.Context, rOpts ...RunOption) error {
	opts := MakeRunOptions(rOpts...)
	inputDir := or.String(opts.InputDir(), defaultInputDir)
	outputFile := or.String(opts.OutputFile(), defaultOutputFile)

	log.Println("Instagram Follower Comparison")
	log.Println(strings.Repeat("=", 40))

	followersPath := resolveFollowersFile(inputDir)
	followingPath := filepath.Join(inputDir, followingFile)

	log.Printf("loading followers from %s", followersPath)
	followersData, err := instagram.LoadFollowers(followersPath)
	if err != nil {
		return err
	}
	log.Printf("loading following from %s", followingPath)
	followingData, err := instagram.LoadFollowing(followingPath)
	if err != nil {
		return err
	}

	log.Println("extracting usernames...")
	followers := instagram.ExtractFollowers(followersData)
	following := instagram.ExtractFollowing(followingData)

	log.Printf("found %s followers", util.FormatNumber(len(followers)))
	log.Printf("found %s accounts you're following", util.FormatNumber(len(following)))

	notFollowingBack := NonFollowers(following, followers)

	if len(notFollowingBack) == 0 {
		log.Printf("%s everyone you follow also follows you back!", color.GreenString("✓"))
		return nil
	}

	if err := report.Write(notFollowingBack, outputFile); err != nil {
		return err
	}
	log.Printf("%s found %s users who don't follow you back", color.GreenString("✓"), util.FormatNumber(len(notFollowingBack)))
	log.Printf("%s results saved to %s", color.GreenString("✓"), outputFile)
	return nil
}
