package source

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/go-github/v55/github"
	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/Praashon/devtrackr/internal/domain"
)

// GitHubSource fetches real activity events from the GitHub API.
// Activity is attributed to a single username; events from other
// contributors in the same repositories are ignored.
type GitHubSource struct {
	client      *github.Client
	rateLimiter *RateLimiter
	username    string
}

// NewGitHubSource creates a GitHub-backed event source authenticated with
// the given token
func NewGitHubSource(token, username string) *GitHubSource {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(context.Background(), ts)

	return &GitHubSource{
		client:      github.NewClient(tc),
		rateLimiter: NewRateLimiter(),
		username:    username,
	}
}

// EventsForWeek collects the user's merged pull requests, submitted
// reviews and commits across the included repositories for the window.
// A repository that fails to fetch is skipped so one bad repo does not
// sink the whole week.
func (s *GitHubSource) EventsForWeek(ctx context.Context, _ string, window domain.WeekWindow, repos []domain.UserRepository) ([]domain.Event, error) {
	since := window.StartDate
	until := window.StartDate.AddDate(0, 0, 7)

	events := []domain.Event{}
	var firstErr error

	for _, repo := range includedByID(repos) {
		prEvents, err := s.pullRequestEvents(ctx, repo, window.ID, since, until)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		events = append(events, prEvents...)

		commitEvents, err := s.commitEvents(ctx, repo, window.ID, since, until)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		events = append(events, commitEvents...)
	}

	if len(events) == 0 && firstErr != nil {
		return nil, firstErr
	}
	return events, nil
}

// pullRequestEvents returns the user's merged PRs and approved reviews in
// the window for one repository
func (s *GitHubSource) pullRequestEvents(ctx context.Context, repo domain.UserRepository, weekID string, since, until time.Time) ([]domain.Event, error) {
	if err := s.rateLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	var events []domain.Event
	opts := &github.PullRequestListOptions{
		State:       "all",
		Sort:        "updated",
		Direction:   "desc",
		ListOptions: github.ListOptions{PerPage: 100},
	}

	for {
		prs, resp, err := s.client.PullRequests.List(ctx, repo.RepoOwner, repo.RepoName, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list pull requests for %s/%s: %w", repo.RepoOwner, repo.RepoName, err)
		}
		s.updateRateLimit(resp)

		done := false
		for _, pr := range prs {
			if pr.GetUpdatedAt().Time.Before(since) {
				// Sorted by updated desc, nothing older can be in the window
				done = true
				break
			}

			if pr.User.GetLogin() == s.username && pr.MergedAt != nil {
				mergedAt := pr.MergedAt.Time
				if !mergedAt.Before(since) && mergedAt.Before(until) {
					events = append(events, domain.Event{
						ID:        uuid.New().String(),
						WeekID:    weekID,
						RepoID:    repo.RepoID,
						RepoName:  repo.RepoName,
						Kind:      domain.EventKindPullRequest,
						Title:     pr.GetTitle(),
						Timestamp: mergedAt,
						URL:       pr.GetHTMLURL(),
						Status:    domain.StatusMerged,
					})
				}
			}

			if pr.User.GetLogin() != s.username {
				reviewEvents, err := s.reviewEvents(ctx, repo, weekID, pr, since, until)
				if err != nil {
					return nil, err
				}
				events = append(events, reviewEvents...)
			}
		}

		if done || resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage

		if err := s.rateLimiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	return events, nil
}

// reviewEvents returns the user's approving reviews on one pull request
// within the window
func (s *GitHubSource) reviewEvents(ctx context.Context, repo domain.UserRepository, weekID string, pr *github.PullRequest, since, until time.Time) ([]domain.Event, error) {
	if err := s.rateLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	reviews, resp, err := s.client.PullRequests.ListReviews(ctx, repo.RepoOwner, repo.RepoName, pr.GetNumber(), &github.ListOptions{PerPage: 100})
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews for %s/%s#%d: %w", repo.RepoOwner, repo.RepoName, pr.GetNumber(), err)
	}
	s.updateRateLimit(resp)

	var events []domain.Event
	for _, review := range reviews {
		if review.User.GetLogin() != s.username {
			continue
		}
		if !strings.EqualFold(review.GetState(), "approved") {
			continue
		}
		submittedAt := review.GetSubmittedAt().Time
		if submittedAt.Before(since) || !submittedAt.Before(until) {
			continue
		}
		events = append(events, domain.Event{
			ID:        uuid.New().String(),
			WeekID:    weekID,
			RepoID:    repo.RepoID,
			RepoName:  repo.RepoName,
			Kind:      domain.EventKindReview,
			Title:     "Review: " + pr.GetTitle(),
			Timestamp: submittedAt,
			URL:       review.GetHTMLURL(),
			Status:    domain.StatusApproved,
		})
	}
	return events, nil
}

// commitEvents returns the user's commits in the window for one repository
func (s *GitHubSource) commitEvents(ctx context.Context, repo domain.UserRepository, weekID string, since, until time.Time) ([]domain.Event, error) {
	if err := s.rateLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	var events []domain.Event
	opts := &github.CommitsListOptions{
		Author:      s.username,
		Since:       since,
		Until:       until,
		ListOptions: github.ListOptions{PerPage: 100},
	}

	for {
		commits, resp, err := s.client.Repositories.ListCommits(ctx, repo.RepoOwner, repo.RepoName, opts)
		if err != nil {
			// 409 means the repository is empty
			if resp != nil && resp.StatusCode == 409 {
				return events, nil
			}
			return nil, fmt.Errorf("failed to list commits for %s/%s: %w", repo.RepoOwner, repo.RepoName, err)
		}
		s.updateRateLimit(resp)

		for _, commit := range commits {
			title := commit.Commit.GetMessage()
			if idx := strings.IndexByte(title, '\n'); idx >= 0 {
				title = title[:idx]
			}
			events = append(events, domain.Event{
				ID:        uuid.New().String(),
				WeekID:    weekID,
				RepoID:    repo.RepoID,
				RepoName:  repo.RepoName,
				Kind:      domain.EventKindCommit,
				Title:     title,
				Timestamp: commit.Commit.Author.GetDate().Time,
				URL:       commit.GetHTMLURL(),
				Status:    domain.StatusCommitted,
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage

		if err := s.rateLimiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	return events, nil
}

func (s *GitHubSource) updateRateLimit(resp *github.Response) {
	if resp != nil && resp.Rate.Remaining >= 0 {
		s.rateLimiter.Update(resp.Rate.Remaining, resp.Rate.Reset.Time)
	}
}
