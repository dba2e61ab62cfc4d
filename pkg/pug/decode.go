package pug

import (
	"context"
	"encoding/json"

	"github.com/turtacn/pubchem-go/pkg/errors"
)

// faultEnvelope is the error body accompanying non-2xx responses.
type faultEnvelope struct {
	Fault struct {
		Details []string `json:"Details"`
	} `json:"Fault"`
}

// faultDetail extracts the first detail string from a fault envelope body,
// returning "" when the body is not a fault envelope or carries no details.
func faultDetail(body []byte) string {
	var env faultEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return ""
	}
	if len(env.Fault.Details) == 0 {
		return ""
	}
	return env.Fault.Details[0]
}

// unmarshalJSON decodes body into v, wrapping failures as serialization
// errors.
func unmarshalJSON(body []byte, v interface{}) error {
	if err := json.Unmarshal(body, v); err != nil {
		return errors.Wrap(err, errors.ErrCodeSerialization, "failed to decode JSON response")
	}
	return nil
}

// GetJSON executes req in JSON output and decodes the response.  A
// not-found response yields (nil, nil): callers treat absence of a record
// as an empty result, never as an error.  Every other error propagates.
func (c *Client) GetJSON(ctx context.Context, req Request) (map[string]interface{}, error) {
	req.Output = OutputJSON
	body, err := c.Get(ctx, req)
	if err != nil {
		if errors.IsNotFound(err) {
			c.logger.Infof("record not found: %v", err)
			return nil, nil
		}
		return nil, err
	}
	var result map[string]interface{}
	if err := unmarshalJSON(body, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetSDF executes req in SDF output and returns the structure-file text.
// A not-found response yields ("", nil), mirroring GetJSON.
func (c *Client) GetSDF(ctx context.Context, req Request) (string, error) {
	req.Output = OutputSDF
	body, err := c.Get(ctx, req)
	if err != nil {
		if errors.IsNotFound(err) {
			c.logger.Infof("record not found: %v", err)
			return "", nil
		}
		return "", err
	}
	return string(body), nil
}
