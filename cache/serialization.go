package cache

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/scipunch/newswire/fetcher/types"
)

// storedArticle keeps the parsed publish time, which Article leaves out of
// its JSON form
type storedArticle struct {
	types.Article
	Published time.Time `json:"published"`
}

// SerializeArticles converts articles to JSON bytes for the sqlite store
func SerializeArticles(articles []types.Article) ([]byte, error) {
	stored := make([]storedArticle, len(articles))
	for i, a := range articles {
		stored[i] = storedArticle{Article: a, Published: a.Published}
	}
	data, err := json.Marshal(stored)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal articles: %w", err)
	}
	return data, nil
}

// DeserializeArticles converts JSON bytes back to articles
func DeserializeArticles(data []byte) ([]types.Article, error) {
	var stored []storedArticle
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached articles: %w", err)
	}
	articles := make([]types.Article, len(stored))
	for i, s := range stored {
		articles[i] = s.Article
		articles[i].Published = s.Published
	}
	return articles, nil
}
