package deadline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gmail "google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// NewGmailService builds a read-only Gmail client from an OAuth client
// secrets file and a previously saved token. A missing token file means the
// inbox was never connected.
func NewGmailService(ctx context.Context, credentialsFile, tokenFile string) (*gmail.Service, error) {
	b, err := os.ReadFile(credentialsFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("client secrets %s: %w", credentialsFile, ErrNotConnected)
		}
		return nil, fmt.Errorf("reading client secrets %s: %w", credentialsFile, err)
	}

	config, err := google.ConfigFromJSON(b, gmail.GmailReadonlyScope)
	if err != nil {
		return nil, fmt.Errorf("parsing client secrets: %w", err)
	}

	tok, err := tokenFromFile(tokenFile)
	if err != nil {
		return nil, err
	}

	svc, err := gmail.NewService(ctx, option.WithTokenSource(config.TokenSource(ctx, tok)))
	if err != nil {
		return nil, fmt.Errorf("creating gmail service: %w", err)
	}
	return svc, nil
}

func tokenFromFile(path string) (*oauth2.Token, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("token %s: %w", path, ErrNotConnected)
		}
		return nil, fmt.Errorf("opening token %s: %w", path, err)
	}
	defer f.Close()

	tok := &oauth2.Token{}
	if err := json.NewDecoder(f).Decode(tok); err != nil {
		return nil, fmt.Errorf("decoding token %s: %w", path, err)
	}
	return tok, nil
}
