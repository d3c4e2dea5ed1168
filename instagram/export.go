// Package instagram reads the followers_and_following exports from
// Instagram's "Download Your Information" archive.
package instagram

import (
	"encoding/json"
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
)

type StringListDatum struct {
	Href      string `json:"href"`
	Value     string `json:"value"`
	Timestamp int64  `json:"timestamp"`
}

// FollowerRecord is one entry of the followers export. The username lives in
// StringListData[i].Value; everything else rides along.
type FollowerRecord struct {
	Title          string            `json:"title"`
	MediaListData  []json.RawMessage `json:"media_list_data"`
	StringListData []StringListDatum `json:"string_list_data"`
}

// FollowingRecord is one entry of the following export. Unlike followers, the
// username is the top-level Title.
type FollowingRecord struct {
	Title          string            `json:"title"`
	MediaListData  []json.RawMessage `json:"media_list_data"`
	StringListData []StringListDatum `json:"string_list_data"`
}

type FollowingExport struct {
	RelationshipsFollowing []FollowingRecord `json:"relationships_following"`
}

func loadJSON(path string, v interface{}) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return errors.Wrapf(ErrFileNotFound, "%s", path)
	}
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(b, v); err != nil {
		return errors.Wrapf(ErrMalformedJSON, "%s: %v", path, err)
	}
	return nil
}

func LoadFollowers(path string) ([]FollowerRecord, error) {
	var res []FollowerRecord
	if err := loadJSON(path, &res); err != nil {
		return nil, err
	}
	return res, nil
}

func LoadFollowing(path string) (FollowingExport, error) {
	var res FollowingExport
	if err := loadJSON(path, &res); err != nil {
		return FollowingExport{}, err
	}
	return res, nil
}
