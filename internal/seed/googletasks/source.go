// Package googletasks implements seed.Source by reading open tasks from a
// Google Tasks list. Access is read-only.
package googletasks

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	tasks "google.golang.org/api/tasks/v1"

	"pintask/internal/config"
	"pintask/internal/seed"
)

const (
	// DefaultListID is the special ID for the default list.
	DefaultListID = "@default"

	// PageSize is the number of items requested per page.
	PageSize = 100

	// APITimeout bounds each API call.
	APITimeout = 5 * time.Second

	// Scope is the OAuth scope requested by login and used by the source.
	Scope = tasks.TasksReadonlyScope
)

// Source loads open task titles from one Google Tasks list.
type Source struct {
	svc      *tasks.Service
	listName string
}

// New creates a Source for listName (empty means the default list).
// Requires oauth_client.json and token.json to exist.
func New(ctx context.Context, cfg *config.Config, listName string) (*Source, error) {
	clientJSON, err := os.ReadFile(cfg.OAuthClientPath())
	if err != nil {
		return nil, fmt.Errorf("failed to read oauth_client.json: %w", err)
	}

	oauthConfig, err := google.ConfigFromJSON(clientJSON, Scope)
	if err != nil {
		return nil, fmt.Errorf("invalid oauth_client.json: %w", err)
	}

	tokenData, err := os.ReadFile(cfg.TokenPath())
	if err != nil {
		return nil, fmt.Errorf("failed to read token.json: %w", err)
	}

	var token oauth2.Token
	if err := json.Unmarshal(tokenData, &token); err != nil {
		return nil, fmt.Errorf("invalid token.json: %w", err)
	}

	httpClient := oauth2.NewClient(ctx, oauthConfig.TokenSource(ctx, &token))
	return NewWithHTTPClient(ctx, httpClient, listName)
}

// NewWithHTTPClient creates a Source with a custom HTTP client. Extra options
// (such as option.WithEndpoint) are passed to the API client.
func NewWithHTTPClient(ctx context.Context, httpClient *http.Client, listName string, opts ...option.ClientOption) (*Source, error) {
	opts = append([]option.ClientOption{option.WithHTTPClient(httpClient)}, opts...)
	svc, err := tasks.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create tasks service: %w", err)
	}
	return &Source{svc: svc, listName: strings.TrimSpace(listName)}, nil
}

// Name implements seed.Source.
func (s *Source) Name() string { return "google tasks" }

// Load implements seed.Source. Completed, deleted and hidden tasks are left
// out; order is the API order.
func (s *Source) Load(ctx context.Context) ([]seed.Entry, error) {
	listID, err := s.resolveList(ctx)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	var entries []seed.Entry
	err = s.svc.Tasks.List(listID).
		MaxResults(PageSize).
		ShowCompleted(false).
		ShowDeleted(false).
		ShowHidden(false).
		Pages(ctx, func(resp *tasks.Tasks) error {
			for _, item := range resp.Items {
				entries = append(entries, seed.Entry{Name: normalizeTitle(item.Title)})
			}
			return nil
		})
	if err != nil {
		return nil, wrapError(err)
	}
	return entries, nil
}

// resolveList finds the list ID by title (case-insensitive, trimmed).
func (s *Source) resolveList(ctx context.Context) (string, error) {
	if s.listName == "" {
		return DefaultListID, nil
	}

	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	want := strings.ToLower(s.listName)
	var matches []string
	err := s.svc.Tasklists.List().MaxResults(PageSize).Pages(ctx, func(resp *tasks.TaskLists) error {
		for _, list := range resp.Items {
			if strings.ToLower(strings.TrimSpace(list.Title)) == want {
				matches = append(matches, list.Id)
			}
		}
		return nil
	})
	if err != nil {
		return "", wrapError(err)
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("list %s: %w", s.listName, seed.ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("ambiguous list name: %s", s.listName)
	}
}

// normalizeTitle folds multi-line titles onto one line.
func normalizeTitle(title string) string {
	title = strings.ReplaceAll(title, "\r", " ")
	return strings.ReplaceAll(title, "\n", " ")
}

// wrapError wraps API errors with user-friendly messages.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	errStr := err.Error()

	if strings.Contains(errStr, "context deadline exceeded") {
		return fmt.Errorf("request timed out")
	}

	if strings.Contains(errStr, "401") || strings.Contains(errStr, "403") {
		return fmt.Errorf("token expired or revoked (run: pintask login)")
	}

	if strings.Contains(errStr, "404") {
		return seed.ErrNotFound
	}

	return err
}
