package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
)

// StatusError is returned for responses outside the 2xx range. Msg
// carries the service's own error message when the body holds one.
type StatusError struct {
	Code int
	Msg  string
	body string
}

func (e StatusError) NotFound() bool {
	return e.Code == 404
}
func (e StatusError) Error() string {
	return fmt.Sprintf("recieved a non 2xx status response, got a %d with body %q", e.Code, e.body)
}

func (c *Client) do(ctx context.Context, method string, path string, reqBody interface{}, result interface{}) error {
	var req *http.Request
	var err error

	if reqBody != nil {
		body := new(bytes.Buffer)
		if err := json.NewEncoder(body).Encode(reqBody); err != nil {
			return err
		}
		req, err = http.NewRequestWithContext(ctx, method, c.Base.String()+path, body)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, c.Base.String()+path, nil)
	}

	if err != nil {
		return err
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, err := ioutil.ReadAll(resp.Body)
		if err != nil {
			return err
		}

		perr := PlatformError{}
		_ = json.Unmarshal(b, &perr)
		return StatusError{Code: resp.StatusCode, Msg: perr.Msg, body: string(b)}
	}

	err = json.NewDecoder(resp.Body).Decode(result)
	if err != nil {
		return err
	}

	return nil
}
