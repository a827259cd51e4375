package socialstats

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

// ProfileStats is a snapshot of an influencer's public profile page.
type ProfileStats struct {
	Handle        string    `json:"handle"`
	Followers     *int      `json:"followers,omitempty"`
	VerifiedBadge bool      `json:"verified_badge"`
	FetchedAt     time.Time `json:"fetched_at"`
}

// Parser scrapes follower counts from public profile pages. The page URL is
// built from a fmt template with the handle as the only argument.
type Parser struct {
	urlTemplate string
	httpClient  *http.Client
	log         *zap.Logger
	maxRetries  int
}

func NewParser(urlTemplate string, timeoutMS, maxRetries int, log *zap.Logger) *Parser {
	return &Parser{
		urlTemplate: urlTemplate,
		httpClient: &http.Client{
			Timeout: time.Duration(timeoutMS) * time.Millisecond,
		},
		log:        log,
		maxRetries: maxRetries,
	}
}

func (p *Parser) FetchProfile(ctx context.Context, handle string) (*ProfileStats, error) {
	url := fmt.Sprintf(p.urlTemplate, handle)

	var doc *goquery.Document
	var lastErr error

	for attempt := 0; attempt <= p.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
		req.Header.Set("Accept-Language", "en-US,en;q=0.9")

		resp, err := p.httpClient.Do(req)
		if err != nil {
			lastErr = err
			time.Sleep(time.Duration(attempt+1) * 500 * time.Millisecond)
			continue
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			lastErr = fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
			time.Sleep(time.Duration(attempt+1) * 500 * time.Millisecond)
			continue
		}

		doc, err = goquery.NewDocumentFromReader(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}
		lastErr = nil
		break
	}

	if lastErr != nil {
		return nil, lastErr
	}

	stats := &ProfileStats{
		Handle:    handle,
		FetchedAt: time.Now(),
	}

	// Counter blocks on the profile page
	doc.Find(".tgme_channel_info_counter .counter_value").Each(func(i int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		label := strings.ToLower(strings.TrimSpace(s.Parent().Find(".counter_type").Text()))
		if strings.Contains(label, "subscriber") || strings.Contains(label, "follower") || strings.Contains(label, "member") {
			if n := parseCount(text); n > 0 {
				stats.Followers = &n
			}
		}
	})

	// Fallback: og:description meta tags usually carry "N followers"
	if stats.Followers == nil {
		doc.Find(`meta[property="og:description"]`).Each(func(i int, s *goquery.Selection) {
			content, _ := s.Attr("content")
			lower := strings.ToLower(content)
			if strings.Contains(lower, "follower") || strings.Contains(lower, "subscriber") {
				if n := parseCount(content); n > 0 {
					stats.Followers = &n
				}
			}
		})
	}

	if doc.Find(".verified-icon, .tgme_icon_verified").Length() > 0 {
		stats.VerifiedBadge = true
	}

	return stats, nil
}

var countRe = regexp.MustCompile(`([0-9][0-9 ,.\x{00a0}]*)\s*([KkMm])?`)

// parseCount reads counts like "1.2K", "3.4M", "12,345" or "1 234".
func parseCount(s string) int {
	m := countRe.FindStringSubmatch(s)
	if m == nil {
		return 0
	}

	num := strings.NewReplacer(",", "", " ", "", " ", "").Replace(strings.TrimSpace(m[1]))
	num = strings.TrimRight(num, ".")
	if num == "" {
		return 0
	}

	f, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0
	}

	switch strings.ToUpper(m[2]) {
	case "K":
		f *= 1_000
	case "M":
		f *= 1_000_000
	}
	return int(f + 0.5)
}
