package main

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/spudtrooper/instacompare/instagram"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "success",
			err:  nil,
			want: exitOK,
		},
		{
			name: "not found",
			err:  errors.Wrapf(instagram.ErrFileNotFound, "followers_and_following/followers.json"),
			want: exitFileNotFound,
		},
		{
			name: "malformed",
			err:  errors.Wrapf(instagram.ErrMalformedJSON, "following.json: unexpected EOF"),
			want: exitMalformed,
		},
		{
			name: "unexpected",
			err:  errors.Errorf("permission denied"),
			want: exitUnexpected,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got, want := exitCode(test.err), test.want; got != want {
				t.Errorf("got %d but expected %d", got, want)
			}
		})
	}
}
