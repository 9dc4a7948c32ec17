package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextLink(t *testing.T) {
	testCases := []struct {
		name        string
		header      map[string]string
		expectedURL string
		expectFound bool
	}{
		{
			name:        "no Link header",
			header:      map[string]string{},
			expectFound: false,
		},
		{
			name:        "single next entry",
			header:      map[string]string{"Link": `<https://api.github.com/users/p/repos?page=2>; rel="next"`},
			expectedURL: "https://api.github.com/users/p/repos?page=2",
			expectFound: true,
		},
		{
			name: "next among prev, first and last",
			header: map[string]string{"Link": `<https://api.github.com/user/1/repos?per_page=100&page=1>; rel="prev", ` +
				`<https://api.github.com/user/1/repos?per_page=100&page=3>; rel="next", ` +
				`<https://api.github.com/user/1/repos?per_page=100&page=5>; rel="last", ` +
				`<https://api.github.com/user/1/repos?per_page=100&page=1>; rel="first"`},
			expectedURL: "https://api.github.com/user/1/repos?per_page=100&page=3",
			expectFound: true,
		},
		{
			name:        "last page has no next entry",
			header:      map[string]string{"Link": `<https://x/repos?page=1>; rel="first", <https://x/repos?page=4>; rel="prev"`},
			expectFound: false,
		},
		{
			name:        "relation match is case-sensitive",
			header:      map[string]string{"Link": `<https://x/repos?page=2>; rel="Next"`},
			expectFound: false,
		},
		{
			name:        "first next entry wins",
			header:      map[string]string{"Link": `<https://x/a>; rel="next", <https://x/b>; rel="next"`},
			expectedURL: "https://x/a",
			expectFound: true,
		},
		{
			name:        "next within a multi-valued rel",
			header:      map[string]string{"Link": `<https://x/repos?page=2>; rel="next last"`},
			expectedURL: "https://x/repos?page=2",
			expectFound: true,
		},
		{
			name:        "header key lookup is case-sensitive",
			header:      map[string]string{"link": `<https://x/repos?page=2>; rel="next"`},
			expectFound: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			next, found := NextLink(&Response{StatusCode: 200, Header: tc.header})
			assert.Equal(t, tc.expectFound, found)
			assert.Equal(t, tc.expectedURL, next)
		})
	}
}
