package instagram

import "github.com/spudtrooper/goutil/sets"

// ExtractFollowers collects every username appearing as a Value in any
// record's StringListData. Records without the nested list and entries
// without a value are skipped, not errors.
func ExtractFollowers(recs []FollowerRecord) sets.StringSet {
	res := sets.StringSet{}
	for _, r := range recs {
		for _, d := range r.StringListData {
			if d.Value != "" {
				res[d.Value] = true
			}
		}
	}
	return res
}

// ExtractFollowing collects the Title of every record under
// relationships_following. A missing key degrades to the empty set.
func ExtractFollowing(export FollowingExport) sets.StringSet {
	res := sets.StringSet{}
	for _, r := range export.RelationshipsFollowing {
		if r.Title != "" {
			res[r.Title] = true
		}
	}
	return res
}
