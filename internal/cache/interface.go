// Storefinder - Retail Store Locator and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefinder

package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/goccy/go-json"
)

// Cacher is what the analytics handlers need from a response cache. A nil
// Cacher in api.HandlerDeps disables caching.
type Cacher interface {
	Get(key string) (interface{}, bool)
	Set(key string, value interface{})
	Clear()
}

var _ Cacher = (*Cache)(nil)

// GenerateKey derives a key from an endpoint name and its bound request.
// Requests that encode to the same JSON share a key. Requests that cannot
// be encoded fall back to their %+v form.
func GenerateKey(endpoint string, request interface{}) string {
	data, err := json.Marshal(request)
	if err != nil {
		return fmt.Sprintf("%s:%+v", endpoint, request)
	}
	sum := sha256.Sum256(data)
	return endpoint + ":" + hex.EncodeToString(sum[:16])
}
