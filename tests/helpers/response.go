// response.go
//
// Content and data service for the ExpoStands exhibition stand marketing site
// Copyright (c) 2026 ExpoStands OU <dev@expostands.com> (https://www.expostands.com)
//
// This file is part of expostands-api.
// expostands-api is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// expostands-api is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with expostands-api.
// If not, see <https://www.gnu.org/licenses/>.

package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"
)

// JSONReader marshals a payload into a request body reader
func JSONReader(t *testing.T, payload interface{}) *bytes.Reader {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("Failed to marshal request body: %v", err)
	}
	return bytes.NewReader(body)
}

// Envelope mirrors the response envelope every endpoint wraps its payload in.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Total   *int64          `json:"total"`
	Page    *int            `json:"page"`
	Limit   *int            `json:"limit"`
}

// AssertStatus verifies the HTTP status code
func AssertStatus(t *testing.T, resp *http.Response, expected int) {
	t.Helper()
	if resp.StatusCode != expected {
		t.Errorf("Expected status %d, got %d", expected, resp.StatusCode)
	}
}

// ParseJSON decodes the response body into the target
func ParseJSON(t *testing.T, resp *http.Response, target interface{}) {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}
	defer resp.Body.Close()

	if err := json.Unmarshal(body, target); err != nil {
		t.Fatalf("Failed to decode JSON: %v. Body: %s", err, string(body))
	}
}

// ParseEnvelope decodes the response envelope and returns it.
func ParseEnvelope(t *testing.T, resp *http.Response) Envelope {
	t.Helper()
	var env Envelope
	ParseJSON(t, resp, &env)
	return env
}

// AssertSuccess verifies the envelope carries success=true and decodes the
// data payload into target when target is non-nil.
func AssertSuccess(t *testing.T, resp *http.Response, target interface{}) {
	t.Helper()
	env := ParseEnvelope(t, resp)
	if !env.Success {
		t.Fatalf("Expected success=true, got error: %s", env.Error)
	}
	if target != nil {
		if err := json.Unmarshal(env.Data, target); err != nil {
			t.Fatalf("Failed to decode data payload: %v. Data: %s", err, string(env.Data))
		}
	}
}

// AssertError verifies the envelope carries success=false with the expected
// error message.
func AssertError(t *testing.T, resp *http.Response, expected string) {
	t.Helper()
	env := ParseEnvelope(t, resp)
	if env.Success {
		t.Fatal("Expected success=false")
	}
	if env.Error != expected {
		t.Errorf("Expected error %q, got %q", expected, env.Error)
	}
}
