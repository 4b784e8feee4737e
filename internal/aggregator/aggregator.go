// Package aggregator assembles the community snapshot from the upstream
// GitHub repository.
package aggregator

import (
	"context"
	"strings"

	gh "github.com/google/go-github/v57/github"
	"golang.org/x/sync/errgroup"

	"github.com/gitswhy/cognition-web-genesis-sub001/pkg/api/community"
	"github.com/gitswhy/cognition-web-genesis-sub001/pkg/logging"
)

const (
	maxIssues               = 10
	maxContributorsFetched  = 10
	maxContributorsReturned = 8
)

// GitHubAPI is the upstream dependency of the aggregator
type GitHubAPI interface {
	ListOpenIssues(ctx context.Context, limit int) ([]*gh.Issue, error)
	ListContributors(ctx context.Context, limit int) ([]*gh.Contributor, error)
	GetRepository(ctx context.Context) (*gh.Repository, error)
}

// Aggregator rebuilds a community snapshot on every call. No caching: each
// request reflects upstream state at the time of the call.
type Aggregator struct {
	github GitHubAPI
	logger logging.Logger
}

func New(github GitHubAPI, logger logging.Logger) *Aggregator {
	return &Aggregator{
		github: github,
		logger: logger,
	}
}

// Snapshot fetches issues, contributors, and repository metadata
// concurrently. The issues fetch is the critical path; a failure there fails
// the whole snapshot. Contributor and repository failures degrade to empty
// values instead.
func (a *Aggregator) Snapshot(ctx context.Context) (*community.Snapshot, error) {
	var (
		issues         []*gh.Issue
		contributors   []*gh.Contributor
		openIssueCount int
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		list, err := a.github.ListOpenIssues(gctx, maxIssues)
		if err != nil {
			return err
		}
		issues = list
		return nil
	})

	g.Go(func() error {
		list, err := a.github.ListContributors(gctx, maxContributorsFetched)
		if err != nil {
			a.logger.WithError(err).Warn("Contributors fetch failed, degrading to empty list")
			return nil
		}
		contributors = list
		return nil
	})

	g.Go(func() error {
		repo, err := a.github.GetRepository(gctx)
		if err != nil {
			a.logger.WithError(err).Warn("Repository metadata fetch failed, degrading to zero open issues")
			return nil
		}
		openIssueCount = repo.GetOpenIssuesCount()
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return buildSnapshot(issues, contributors, openIssueCount), nil
}

func buildSnapshot(issues []*gh.Issue, contributors []*gh.Contributor, openIssueCount int) *community.Snapshot {
	snap := &community.Snapshot{
		Issues:       make([]community.Issue, 0, len(issues)),
		Contributors: make([]community.Contributor, 0, maxContributorsReturned),
	}

	for _, issue := range issues {
		labels := make([]community.Label, 0, len(issue.Labels))
		for _, label := range issue.Labels {
			labels = append(labels, community.Label{
				Name:  label.GetName(),
				Color: hexColor(label.GetColor()),
			})
		}

		snap.Issues = append(snap.Issues, community.Issue{
			ID:     issue.GetID(),
			Title:  issue.GetTitle(),
			State:  issue.GetState(),
			Labels: labels,
			Author: community.Author{
				Handle:    issue.GetUser().GetLogin(),
				AvatarURL: issue.GetUser().GetAvatarURL(),
			},
			CreatedAt:    issue.GetCreatedAt().Time,
			CommentCount: issue.GetComments(),
			URL:          issue.GetHTMLURL(),
			Body:         issue.GetBody(),
		})
	}

	kept := contributors
	if len(kept) > maxContributorsReturned {
		kept = kept[:maxContributorsReturned]
	}
	for _, contributor := range kept {
		snap.Contributors = append(snap.Contributors, community.Contributor{
			Handle:            contributor.GetLogin(),
			ContributionCount: contributor.GetContributions(),
			AvatarURL:         contributor.GetAvatarURL(),
		})
	}

	// ContributorCount mirrors the truncated list served to the page, not the
	// repository-wide total. ChatMembers has no upstream source wired yet.
	snap.Stats = community.Stats{
		ContributorCount: len(snap.Contributors),
		OpenIssueCount:   openIssueCount,
		ChatMembers:      0,
	}

	return snap
}

// hexColor normalizes an upstream label color (bare hex digits) to a
// display color with a leading '#'. Labels without a color stay empty.
func hexColor(color string) string {
	if color == "" || strings.HasPrefix(color, "#") {
		return color
	}
	return "#" + color
}
