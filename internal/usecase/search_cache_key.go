package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
)

const boardCachePrefix = "board:search:"

type boardCacheKeyInput struct {
	Dataset  string `json:"dataset"`
	Query    string `json:"query"`
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
	Skills   int    `json:"skills"`
}

// BoardCacheKey keys a computed page. Matching is case-insensitive, so the
// query is lowercased; whitespace is significant and kept as is.
func BoardCacheKey(dataset string, query string, page, pageSize, maxSkills int) string {
	in := boardCacheKeyInput{
		Dataset:  dataset,
		Query:    strings.ToLower(query),
		Page:     page,
		PageSize: pageSize,
		Skills:   maxSkills,
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return boardCachePrefix + hex.EncodeToString(sum[:])
}
