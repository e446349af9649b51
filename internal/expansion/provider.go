// Package expansion proposes new lexicon candidates from external
// word-definition sources. Lookups are best-effort, cached and time-boxed;
// nothing here ever blocks or fails an analysis request, and no candidate
// reaches the live lexicon without explicit admin approval.
package expansion

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Definition is one normalized definition document from a provider.
type Definition struct {
	Word        string
	Language    string
	Definitions []string
	Examples    []string
	Synonyms    []string
	Source      string
	ThumbsUp    int
}

// Provider fetches candidate definitions for a word.
type Provider interface {
	Name() string
	Supports(language string) bool
	Lookup(ctx context.Context, word, language string) ([]Definition, error)
}

// ErrNoDefinitions is returned when a provider responds without usable
// content. It is non-fatal; the word simply stays unscored.
var ErrNoDefinitions = errors.New("no definitions found")

// FreeDictionary queries the free dictionary API for en, es and pt.
type FreeDictionary struct {
	baseURL string
	client  *http.Client
}

// NewFreeDictionary builds the provider. client may be nil for the default.
func NewFreeDictionary(baseURL string, client *http.Client) *FreeDictionary {
	if client == nil {
		client = http.DefaultClient
	}
	return &FreeDictionary{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

func (f *FreeDictionary) Name() string { return "free_dictionary" }

func (f *FreeDictionary) Supports(language string) bool {
	switch language {
	case "en", "es", "pt":
		return true
	}
	return false
}

type freeDictEntry struct {
	Word     string `json:"word"`
	Meanings []struct {
		Definitions []struct {
			Definition string   `json:"definition"`
			Example    string   `json:"example"`
			Synonyms   []string `json:"synonyms"`
		} `json:"definitions"`
	} `json:"meanings"`
}

func (f *FreeDictionary) Lookup(ctx context.Context, word, language string) ([]Definition, error) {
	endpoint := fmt.Sprintf("%s/%s/%s", f.baseURL, language, url.PathEscape(word))
	var entries []freeDictEntry
	if err := getJSON(ctx, f.client, endpoint, &entries); err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ErrNoDefinitions
	}

	def := Definition{Word: word, Language: language, Source: f.Name()}
	for _, e := range entries {
		for _, m := range e.Meanings {
			for _, d := range m.Definitions {
				if d.Definition != "" {
					def.Definitions = append(def.Definitions, d.Definition)
				}
				if d.Example != "" {
					def.Examples = append(def.Examples, d.Example)
				}
				def.Synonyms = append(def.Synonyms, d.Synonyms...)
			}
		}
	}
	if len(def.Definitions) == 0 {
		return nil, ErrNoDefinitions
	}
	return []Definition{def}, nil
}

// UrbanDictionary queries the urban dictionary API for English slang.
type UrbanDictionary struct {
	baseURL string
	client  *http.Client
}

// NewUrbanDictionary builds the provider. client may be nil for the default.
func NewUrbanDictionary(baseURL string, client *http.Client) *UrbanDictionary {
	if client == nil {
		client = http.DefaultClient
	}
	return &UrbanDictionary{baseURL: baseURL, client: client}
}

func (u *UrbanDictionary) Name() string { return "urban_dictionary" }

func (u *UrbanDictionary) Supports(language string) bool { return language == "en" }

type urbanResponse struct {
	List []struct {
		Definition string `json:"definition"`
		Example    string `json:"example"`
		ThumbsUp   int    `json:"thumbs_up"`
	} `json:"list"`
}

// maxUrbanDefinitions bounds how many entries feed weight derivation; lower
// ranked entries are mostly noise.
const maxUrbanDefinitions = 3

func (u *UrbanDictionary) Lookup(ctx context.Context, word, language string) ([]Definition, error) {
	endpoint := fmt.Sprintf("%s?term=%s", u.baseURL, url.QueryEscape(word))
	var resp urbanResponse
	if err := getJSON(ctx, u.client, endpoint, &resp); err != nil {
		return nil, err
	}
	if len(resp.List) == 0 {
		return nil, ErrNoDefinitions
	}

	def := Definition{Word: word, Language: language, Source: u.Name()}
	for i, item := range resp.List {
		if i >= maxUrbanDefinitions {
			break
		}
		if item.Definition != "" {
			def.Definitions = append(def.Definitions, item.Definition)
		}
		if item.Example != "" {
			def.Examples = append(def.Examples, item.Example)
		}
		if item.ThumbsUp > def.ThumbsUp {
			def.ThumbsUp = item.ThumbsUp
		}
	}
	if len(def.Definitions) == 0 {
		return nil, ErrNoDefinitions
	}
	return []Definition{def}, nil
}

func getJSON(ctx context.Context, client *http.Client, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNoDefinitions
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
