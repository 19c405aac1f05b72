package article

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// limit article length for prompt building
const maxContentLength = 8000

const defaultFetchTimeout = 30 * time.Second

// Fetcher downloads web articles and extracts their readable text
type Fetcher struct {
	client *http.Client
}

// NewFetcher creates a new article fetcher. A nil client falls back to a
// timeout-configured default.
func NewFetcher(client *http.Client) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: defaultFetchTimeout}
	}
	return &Fetcher{client: client}
}

// Fetch downloads and extracts text from the given URL
func (f *Fetcher) Fetch(ctx context.Context, url string) (content, title string, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return "", "", fmt.Errorf("failed to build article request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", "", fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("failed to fetch article: status code %d", resp.StatusCode)
	}

	// parse the HTML
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	title = strings.TrimSpace(doc.Find("title").First().Text())
	content = extractContent(doc)
	if content == "" {
		return "", "", fmt.Errorf("no article content found at %s", url)
	}

	if len(content) > maxContentLength {
		content = content[:maxContentLength] + "..."
	}

	return content, title, nil
}

// extractContent extracts the main text content from the HTML document
func extractContent(doc *goquery.Document) string {
	var articleText strings.Builder

	// first try to find article content in common containers
	article := doc.Find("article, .article, .post, .content, main")
	if article.Length() > 0 {
		article.Find("p").Each(func(_ int, s *goquery.Selection) {
			articleText.WriteString(s.Text())
			articleText.WriteString("\n\n")
		})
	} else {
		// fallback to all paragraphs
		doc.Find("p").Each(func(_ int, s *goquery.Selection) {
			// skip very short paragraphs which are likely not article content
			if len(s.Text()) > 50 {
				articleText.WriteString(s.Text())
				articleText.WriteString("\n\n")
			}
		})
	}

	return strings.TrimSpace(articleText.String())
}
