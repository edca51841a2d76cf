package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"
)

// Loader populates a Store from an upstream JSON document or a local
// file. Refreshes are opportunistic: a failed refresh keeps the previous
// snapshot and logs the failure.
type Loader struct {
	store  *Store
	url    string
	path   string
	client *http.Client
	logger *log.Logger
}

// NewLoader builds a loader. url takes precedence over path; either may
// be empty, in which case the other source is used. With both empty Load
// is a no-op and the store stays empty until the provider is configured.
func NewLoader(store *Store, url, path string, logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.Default()
	}
	return &Loader{
		store:  store,
		url:    url,
		path:   path,
		client: &http.Client{Timeout: 30 * time.Second},
		logger: logger,
	}
}

// Load fetches the catalog once and replaces the store's snapshot.
func (l *Loader) Load(ctx context.Context) error {
	switch {
	case l.url != "":
		return l.loadURL(ctx)
	case l.path != "":
		return l.loadFile()
	default:
		l.logger.Printf("WARN: no catalog source configured, catalog stays empty")
		return nil
	}
}

// Run refreshes the catalog on the given interval until ctx is done. A
// non-positive interval disables refreshing and Run returns immediately.
func (l *Loader) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		l.logger.Printf("catalog refresh disabled")
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := l.Load(ctx); err != nil {
				l.logger.Printf("WARN: catalog refresh failed: %v", err)
			}
		}
	}
}

func (l *Loader) loadURL(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return fmt.Errorf("build catalog request: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch catalog: unexpected status %d", resp.StatusCode)
	}
	return l.replaceFrom(resp.Body)
}

func (l *Loader) loadFile() error {
	file, err := os.Open(l.path)
	if err != nil {
		return fmt.Errorf("open catalog file: %w", err)
	}
	defer file.Close()

	return l.replaceFrom(file)
}

func (l *Loader) replaceFrom(r io.Reader) error {
	var doc catalogDocument
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("decode catalog: %w", err)
	}

	snap := doc.toSnapshot()
	l.store.Replace(snap)
	l.logger.Printf("catalog loaded events=%d venues=%d", len(snap.Events), len(snap.Venues))
	return nil
}
