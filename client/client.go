// Package client is a typed http client for the timecode service.
package client

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

const (
	defaultTimeout = 30 * time.Second
	defaultBaseURL = "http://localhost:8080"
)

// Client talks to a timecode service instance. The zero value targets
// localhost with a default timeout.
type Client struct {
	Base   *url.URL
	Client *http.Client
}

// Parse reports on a timecode string.
func (c *Client) Parse(ctx context.Context, q TimecodeRequest) (TimecodeReport, error) {
	c.ensure()

	var rep TimecodeReport
	err := c.do(ctx, http.MethodPost, "/timecodes/parse", q, &rep)
	if err != nil {
		return TimecodeReport{}, err
	}

	return rep, nil
}

// Format renders a frame or seconds offset as a timecode string.
func (c *Client) Format(ctx context.Context, q TimecodeRequest) (TimecodeReport, error) {
	c.ensure()

	var rep TimecodeReport
	err := c.do(ctx, http.MethodPost, "/timecodes/format", q, &rep)
	if err != nil {
		return TimecodeReport{}, err
	}

	return rep, nil
}

// Convert rebuilds a timecode at another frame rate.
func (c *Client) Convert(ctx context.Context, q ConvertRequest) (TimecodeReport, error) {
	c.ensure()

	var rep TimecodeReport
	err := c.do(ctx, http.MethodPost, "/timecodes/convert", q, &rep)
	if err != nil {
		return TimecodeReport{}, err
	}

	return rep, nil
}

// Arith combines timecode operands under one operation.
func (c *Client) Arith(ctx context.Context, q ArithRequest) (TimecodeReport, error) {
	c.ensure()

	var rep TimecodeReport
	err := c.do(ctx, http.MethodPost, "/timecodes/arith", q, &rep)
	if err != nil {
		return TimecodeReport{}, err
	}

	return rep, nil
}

// SaveCutlist stores a cutlist under a name, returning the normalized
// copy the service wrote.
func (c *Client) SaveCutlist(ctx context.Context, name string, cl Cutlist) (Cutlist, error) {
	c.ensure()

	var saved Cutlist
	err := c.do(ctx, http.MethodPut, "/cutlists/"+url.PathEscape(name), cl, &saved)
	if err != nil {
		return Cutlist{}, err
	}

	return saved, nil
}

// GetCutlist returns a stored cutlist and its derived interval data.
func (c *Client) GetCutlist(ctx context.Context, name string) (CutlistReport, error) {
	c.ensure()

	var rep CutlistReport
	err := c.do(ctx, http.MethodGet, "/cutlists/"+url.PathEscape(name), nil, &rep)
	if err != nil {
		return CutlistReport{}, err
	}

	return rep, nil
}

// DeleteCutlist removes a stored cutlist.
func (c *Client) DeleteCutlist(ctx context.Context, name string) (Ack, error) {
	c.ensure()

	var ack Ack
	err := c.do(ctx, http.MethodDelete, "/cutlists/"+url.PathEscape(name), nil, &ack)
	if err != nil {
		return Ack{}, err
	}

	return ack, nil
}

// Cutlists returns the names of all stored cutlists.
func (c *Client) Cutlists(ctx context.Context) ([]string, error) {
	c.ensure()

	listing := Listing{}
	err := c.do(ctx, http.MethodGet, "/cutlists", nil, &listing)
	if err != nil {
		return nil, err
	}

	return listing.Cutlists, nil
}

// Healthcheck reports whether the service can reach its storage.
func (c *Client) Healthcheck(ctx context.Context) (Ack, error) {
	c.ensure()

	var ack Ack
	err := c.do(ctx, http.MethodGet, "/healthcheck", nil, &ack)
	if err != nil {
		return Ack{}, err
	}

	return ack, nil
}

func (c *Client) ensure() {
	if c.Client == nil {
		c.Client = &http.Client{Timeout: defaultTimeout}
	}

	if c.Base == nil {
		c.Base = urlMust(url.Parse(defaultBaseURL))
	}
}

func urlMust(u *url.URL, _ error) *url.URL { return u }
