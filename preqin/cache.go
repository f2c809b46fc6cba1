package preqin

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"fmt"
	"log"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"

	"github.com/etnz/rocksling/date"
)

// diskCache implements a simple disk cache for HTTP GET responses.
//
// Entries are private to the Authorization header they were fetched with, so
// a token never reads what another token was served.
type diskCache struct {
	base http.RoundTripper
	dir  string // "" is os.TempDir()
}

// key returns the cache file name of a request for the day.
func (c *diskCache) key(req *http.Request) string {
	// one key per day, so the local tmp expires every day.
	rangeID := date.NewRange(date.Today(), date.Daily).Identifier()
	auth := sha1.Sum([]byte(req.Header.Get("Authorization")))
	key := fmt.Sprintf("%s %s %s %x", rangeID, req.Method, req.URL.String(), auth)
	return fmt.Sprintf("preqin-%x", sha1.Sum([]byte(key)))
}

// RoundTrip serves GET requests from the disk cache when a response from
// today is there, otherwise it asks base and stores 2xx responses.
func (c *diskCache) RoundTrip(req *http.Request) (resp *http.Response, err error) {
	if req.Method != http.MethodGet {
		return c.base.RoundTrip(req)
	}
	key := c.key(req)

	cachedResp, err := c.get(key, req)
	if err == nil { // Cache hit
		return cachedResp, nil
	}

	resp, err = c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Printf("%v %v%v %v", resp.Request.Method, resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp, nil
	}

	err = c.put(key, resp)
	if err != nil {
		log.Printf("cache write err (ignored): %v\n", err)
	}
	return resp, nil
}

func (c *diskCache) file(key string) string {
	dir := c.dir
	if dir == "" {
		dir = os.TempDir()
	}
	return filepath.Join(dir, key)
}

// get retrieves a cached response from disk
func (c *diskCache) get(key string, req *http.Request) (resp *http.Response, err error) {
	content, err := os.ReadFile(c.file(key))
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewBuffer(content)), req)
}

// put stores a response to disk cache
func (c *diskCache) put(key string, resp *http.Response) (err error) {
	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}
	return os.WriteFile(c.file(key), content, 0o600)
}

// NewDailyCachingClient returns an http.Client whose GET responses are cached
// in dir until the end of the day. An empty dir is the OS temp dir.
func NewDailyCachingClient(dir string) *http.Client {
	return &http.Client{
		Timeout:   Timeout,
		Transport: &diskCache{base: http.DefaultTransport, dir: dir},
	}
}
