package importer

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"
)

// CareersTarget describes one careers or job-board page: where the
// listing lives and which selectors pull each posting's fields.
type CareersTarget struct {
	SourceName string
	// ListURL may contain a %d placeholder for the page number.
	ListURL            string
	Pages              int
	LinkSelector       string
	TitleSelector      string
	CompanySelector    string
	LocationSelector   string
	SalarySelector     string
	DetailBodySelector string
}

// CareersSource scrapes a static careers page with colly: one pass over
// the listing pages collects detail links, then each detail page is
// fetched for the posting body.
type CareersSource struct {
	target CareersTarget
}

func NewCareersSource(target CareersTarget) *CareersSource {
	if strings.TrimSpace(target.LinkSelector) == "" {
		target.LinkSelector = "a"
	}
	if strings.TrimSpace(target.TitleSelector) == "" {
		target.TitleSelector = "h1"
	}
	if strings.TrimSpace(target.DetailBodySelector) == "" {
		target.DetailBodySelector = "body"
	}
	if target.Pages <= 0 {
		target.Pages = 1
	}
	return &CareersSource{target: target}
}

func (s *CareersSource) Name() string {
	return s.target.SourceName
}

func (s *CareersSource) Fetch(ctx context.Context) ([]Posting, error) {
	links := make([]string, 0)
	dedup := map[string]struct{}{}

	for page := 1; page <= s.target.Pages; page++ {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		listURL := s.target.ListURL
		if strings.Contains(listURL, "%d") {
			listURL = fmt.Sprintf(listURL, page)
		}

		pageLinks, err := s.collectLinks(listURL)
		if err != nil {
			return nil, err
		}
		for _, link := range pageLinks {
			if _, ok := dedup[link]; ok {
				continue
			}
			dedup[link] = struct{}{}
			links = append(links, link)
		}
	}

	postings := make([]Posting, 0, len(links))
	for _, link := range links {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		p, err := s.collectDetail(link)
		if err != nil {
			continue
		}
		postings = append(postings, p)
	}
	return postings, nil
}

func (s *CareersSource) collectLinks(listURL string) ([]string, error) {
	c := s.newCollector(listURL)

	links := make([]string, 0)
	c.OnHTML(s.target.LinkSelector, func(e *colly.HTMLElement) {
		href := strings.TrimSpace(e.Attr("href"))
		if href == "" {
			return
		}
		abs := e.Request.AbsoluteURL(href)
		if abs != "" {
			links = append(links, abs)
		}
	})

	var reqErr error
	c.OnError(func(_ *colly.Response, err error) {
		reqErr = err
	})

	if err := c.Visit(listURL); err != nil {
		return nil, err
	}
	c.Wait()
	if reqErr != nil {
		return nil, reqErr
	}
	return links, nil
}

func (s *CareersSource) collectDetail(jobURL string) (Posting, error) {
	c := s.newCollector(jobURL)

	p := Posting{Company: s.target.SourceName, URL: jobURL}
	c.OnHTML("html", func(e *colly.HTMLElement) {
		p.Title = strings.TrimSpace(e.DOM.Find(s.target.TitleSelector).First().Text())
		if sel := s.target.CompanySelector; sel != "" {
			if v := strings.TrimSpace(e.DOM.Find(sel).First().Text()); v != "" {
				p.Company = v
			}
		}
		if sel := s.target.LocationSelector; sel != "" {
			p.Location = strings.TrimSpace(e.DOM.Find(sel).First().Text())
		}
		if sel := s.target.SalarySelector; sel != "" {
			p.SalaryRange = strings.TrimSpace(e.DOM.Find(sel).First().Text())
		}
		p.Description = strings.TrimSpace(e.DOM.Find(s.target.DetailBodySelector).Text())
	})

	var reqErr error
	c.OnError(func(_ *colly.Response, err error) {
		reqErr = err
	})

	if err := c.Visit(jobURL); err != nil {
		return Posting{}, err
	}
	c.Wait()
	if reqErr != nil {
		return Posting{}, reqErr
	}
	return p, nil
}

func (s *CareersSource) newCollector(rawURL string) *colly.Collector {
	var c *colly.Collector
	if host := hostFromURL(rawURL); host != "" {
		c = colly.NewCollector(colly.AllowedDomains(host))
	} else {
		c = colly.NewCollector()
	}
	_ = c.Limit(&colly.LimitRule{DomainGlob: "*", Parallelism: 2, Delay: 450 * time.Millisecond, RandomDelay: 850 * time.Millisecond})
	return c
}

func hostFromURL(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return ""
	}
	return u.Hostname()
}

