package service

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100

	maxPage = math.MaxInt32
)

// NormalizePage applies listing defaults to raw query values.
// Missing, non-numeric, zero or negative values fall back to the defaults and
// limits above MaxLimit are clamped.
func NormalizePage(rawPage, rawLimit string) (page, limit int) {
	page = parsePositive(rawPage, DefaultPage)
	if page > maxPage {
		page = maxPage
	}
	limit = parsePositive(rawLimit, DefaultLimit)
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit
}

// TotalPages is ceil(total/limit), and 0 for an empty result.
func TotalPages(total int64, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

func parsePositive(raw string, def int) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		// Digits that overflow int64 are still "big", not garbage.
		if errors.Is(err, strconv.ErrRange) && !strings.HasPrefix(raw, "-") {
			return math.MaxInt32
		}
		return def
	}
	if v <= 0 {
		return def
	}
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(v)
}
