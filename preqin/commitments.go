package preqin

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/url"
	"slices"
	"strconv"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/rocksling"
	"golang.org/x/sync/errgroup"
)

// PageSize is the number of commitments the API returns per page.
const PageSize = 200

// PageCount returns the number of pages holding total records.
func PageCount(total int) int {
	if total <= 0 {
		return 0
	}
	n := total / PageSize
	if total%PageSize != 0 {
		n++
	}
	return n
}

func commitmentPath(investorID, strategy string) string {
	return "/api/Investor/commitment/" + url.PathEscape(strategy) + "/" + url.PathEscape(investorID)
}

// Total returns the number of commitments of the investor for the strategy.
func (c *Client) Total(ctx context.Context, investorID, strategy string) (int, error) {
	content, err := c.get(ctx, commitmentPath(investorID, strategy), nil)
	if err != nil {
		return 0, fmt.Errorf("cannot count commitments of investor %s: %w", investorID, err)
	}
	var doc any
	if err := json.Unmarshal(content, &doc); err != nil {
		return 0, fmt.Errorf("cannot decode commitment count of investor %s: %w", investorID, err)
	}
	v, err := jsonpath.Get("$.meta.total", doc)
	if err != nil {
		return 0, fmt.Errorf("commitment count of investor %s: %w", investorID, err)
	}
	total, ok := v.(float64)
	if !ok || total != float64(int(total)) {
		return 0, fmt.Errorf("commitment count of investor %s: invalid meta.total %v", investorID, v)
	}
	return int(total), nil
}

// Page returns the commitments of page n (starting at 1).
//
// A record that cannot be decoded is logged and skipped; the rest of the
// page is kept.
func (c *Client) Page(ctx context.Context, investorID, strategy string, n int) ([]rocksling.Commitment, error) {
	content, err := c.get(ctx, commitmentPath(investorID, strategy), url.Values{"Page": {strconv.Itoa(n)}})
	if err != nil {
		return nil, err
	}
	var page struct {
		Data []json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(content, &page); err != nil {
		return nil, fmt.Errorf("cannot decode page %d: %w", n, err)
	}
	commitments := make([]rocksling.Commitment, 0, len(page.Data))
	for i, raw := range page.Data {
		var cm rocksling.Commitment
		if err := json.Unmarshal(raw, &cm); err != nil {
			log.Printf("warning: skipping record %d of page %d: %v", i+1, n, err)
			continue
		}
		commitments = append(commitments, cm)
	}
	return commitments, nil
}

// FetchAll returns every commitment of the investor for the strategy, in
// page order.
//
// Only a failure to count the commitments is returned. A page that fails is
// logged and skipped, so the result may be partial.
func (c *Client) FetchAll(ctx context.Context, investorID, strategy string) ([]rocksling.Commitment, error) {
	total, err := c.Total(ctx, investorID, strategy)
	if err != nil {
		return nil, err
	}
	n := PageCount(total)
	log.Printf("found %d commitments, fetching %d pages", total, n)

	pages := make([][]rocksling.Commitment, n)
	errs := make([]error, n)
	fetch := func(i int) {
		data, err := c.Page(ctx, investorID, strategy, i+1)
		if err != nil {
			log.Printf("warning: skipping page %d/%d: %v", i+1, n, err)
			errs[i] = fmt.Errorf("page %d: %w", i+1, err)
			return
		}
		pages[i] = data
	}

	if c.Workers <= 1 {
		for i := range n {
			fetch(i)
		}
	} else {
		var g errgroup.Group
		g.SetLimit(c.Workers)
		for i := range n {
			g.Go(func() error {
				fetch(i)
				return nil
			})
		}
		g.Wait() // page failures are kept in errs, never returned to the group
	}

	if err := errors.Join(errs...); err != nil {
		log.Printf("warning: some pages were skipped: %v", err)
	}
	return slices.Concat(pages...), nil
}
