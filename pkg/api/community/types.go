// Package community defines the typed payloads served to the community page.
package community

import "time"

// Label is an issue label with its display color (always carries a leading '#')
type Label struct {
	Name  string `json:"name"`
	Color string `json:"colorHex"`
}

// Author identifies the account that opened an issue
type Author struct {
	Handle    string `json:"handle"`
	AvatarURL string `json:"avatarUrl"`
}

// Issue is a single open issue from the upstream repository
type Issue struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	State        string    `json:"state"`
	Labels       []Label   `json:"labels"`
	Author       Author    `json:"author"`
	CreatedAt    time.Time `json:"createdAt"`
	CommentCount int       `json:"commentCount"`
	URL          string    `json:"url"`
	Body         string    `json:"body"`
}

// Contributor is a repository contributor ordered by contribution count
type Contributor struct {
	Handle            string `json:"handle"`
	ContributionCount int    `json:"contributionCount"`
	AvatarURL         string `json:"avatarUrl"`
}

// Stats summarizes community activity.
// ContributorCount reflects the returned (truncated) contributor list, not
// the repository-wide total. ChatMembers has no live data source yet and is
// always zero.
type Stats struct {
	ContributorCount int `json:"contributorCount"`
	OpenIssueCount   int `json:"openIssueCount"`
	ChatMembers      int `json:"chatMembers"`
}

// Snapshot is the aggregated community payload, rebuilt on every request
type Snapshot struct {
	Issues       []Issue       `json:"issues"`
	Stats        Stats         `json:"stats"`
	Contributors []Contributor `json:"contributors"`
}
