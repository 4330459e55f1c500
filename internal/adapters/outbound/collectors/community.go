package collectors

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/docsgov/docsgov/internal/domain"
)

// categoryKeywords buckets community question titles by topic.
var categoryKeywords = map[string][]string{
	"webhook":        {"webhook", "trigger", "callback", "endpoint"},
	"authentication": {"auth", "oauth", "api key", "credential", "token", "login", "sso"},
	"integration":    {"integrate", "connect", "api", "service"},
	"workflow":       {"workflow", "automation", "flow", "execute"},
	"data":           {"json", "transform", "map", "parse", "format"},
	"scheduling":     {"schedule", "cron", "timer", "interval"},
	"deployment":     {"deploy", "install", "docker", "kubernetes", "self-host", "cloud"},
	"performance":    {"slow", "performance", "timeout", "memory", "scale"},
	"security":       {"security", "permission", "access", "encrypt", "ssl", "https"},
}

// docTypePatterns vote on which kind of document a question cluster needs.
var docTypePatterns = map[string][]*regexp.Regexp{
	"troubleshooting": compileAll(`not working`, `error`, `fail(ed|ing|s)?`, `issue`, `problem`, `can'?t`, `doesn'?t`, `stuck`),
	"how-to":          compileAll(`how (do|can|to)`, `way to`, `possible to`, `want to`, `need to`, `trying to`, `looking for`),
	"concept":         compileAll(`what is`, `what are`, `difference between`, `explain`, `understand`, `why (does|is|do)`),
	"reference":       compileAll(`documentation`, `parameters?`, `options?`, `configuration`, `settings?`, `list of`),
}

func compileAll(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, regexp.MustCompile(p))
	}
	return out
}

// rssFeed is the subset of RSS 2.0 the collector reads.
type rssFeed struct {
	Channel struct {
		Items []rssItem `xml:"item"`
	} `xml:"channel"`
}

type rssItem struct {
	Title   string `xml:"title"`
	Link    string `xml:"link"`
	PubDate string `xml:"pubDate"`
}

// CommunityCollector fetches question feeds, buckets titles by topic
// keywords, and proposes one gap per bucket at or above the cluster
// threshold.
type CommunityCollector struct {
	feeds          []domain.FeedSpec
	minClusterSize int
	client         *http.Client
	now            time.Time
}

func NewCommunity(feeds []domain.FeedSpec, minClusterSize int, now time.Time) *CommunityCollector {
	return &CommunityCollector{
		feeds:          feeds,
		minClusterSize: minClusterSize,
		client:         &http.Client{Timeout: 30 * time.Second},
		now:            now,
	}
}

func (c *CommunityCollector) Name() string             { return "community" }
func (c *CommunityCollector) Source() domain.GapSource { return domain.SourceCommunity }

func (c *CommunityCollector) Collect(ctx context.Context) ([]domain.Gap, error) {
	if len(c.feeds) == 0 {
		return nil, nil
	}

	var items []rssItem
	for _, feed := range c.feeds {
		fetched, err := c.fetch(ctx, feed.URL)
		if err != nil {
			return nil, fmt.Errorf("fetching feed %s: %w", feed.Name, err)
		}
		items = append(items, fetched...)
	}

	return c.cluster(items), nil
}

func (c *CommunityCollector) fetch(ctx context.Context, url string) ([]rssItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "docsgov/1.0")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	var feed rssFeed
	if err := xml.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("parsing RSS: %w", err)
	}
	return feed.Channel.Items, nil
}

// cluster groups items by topic category and emits one gap per bucket that
// meets the repetition threshold.
func (c *CommunityCollector) cluster(items []rssItem) []domain.Gap {
	buckets := make(map[string][]rssItem)
	for _, item := range items {
		buckets[categorize(item.Title)] = append(buckets[categorize(item.Title)], item)
	}

	categories := make([]string, 0, len(buckets))
	for cat := range buckets {
		categories = append(categories, cat)
	}
	sort.Strings(categories)

	var gaps []domain.Gap
	for _, category := range categories {
		bucket := buckets[category]
		if category == "general" || len(bucket) < c.minClusterSize {
			continue
		}

		detectedAt := c.now
		var samples []string
		for _, item := range bucket {
			if len(samples) < 5 {
				samples = append(samples, item.Title)
			}
			if ts, err := time.Parse(time.RFC1123Z, item.PubDate); err == nil && ts.Before(detectedAt) {
				detectedAt = ts
			}
		}

		gaps = append(gaps, domain.Gap{
			ID:               domain.GapID(domain.SourceCommunity, category),
			Source:           domain.SourceCommunity,
			Title:            capitalize(category) + " questions",
			Description:      fmt.Sprintf("Frequently asked topic (%d questions).", len(bucket)),
			SuggestedDocType: suggestDocType(bucket),
			Frequency:        len(bucket),
			Keywords:         append([]string(nil), categoryKeywords[category]...),
			SampleQueries:    samples,
			DetectedAt:       detectedAt,
		})
	}

	return gaps
}

func categorize(title string) string {
	lower := strings.ToLower(title)
	best, bestHits := "general", 0
	for _, category := range sortedCategories() {
		hits := 0
		for _, kw := range categoryKeywords[category] {
			if strings.Contains(lower, kw) {
				hits++
			}
		}
		if hits > bestHits {
			best, bestHits = category, hits
		}
	}
	return best
}

var categoryOrder []string

func sortedCategories() []string {
	if categoryOrder == nil {
		for cat := range categoryKeywords {
			categoryOrder = append(categoryOrder, cat)
		}
		sort.Strings(categoryOrder)
	}
	return categoryOrder
}

// suggestDocType tallies doc-type pattern votes across a cluster's titles.
func suggestDocType(items []rssItem) string {
	votes := make(map[string]int)
	for _, item := range items {
		lower := strings.ToLower(item.Title)
		for docType, patterns := range docTypePatterns {
			for _, re := range patterns {
				if re.MatchString(lower) {
					votes[docType]++
					break
				}
			}
		}
	}

	best, bestVotes := "how-to", 0
	for _, docType := range []string{"troubleshooting", "how-to", "concept", "reference"} {
		if votes[docType] > bestVotes {
			best, bestVotes = docType, votes[docType]
		}
	}
	return best
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
