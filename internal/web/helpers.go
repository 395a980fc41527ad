package web

import (
	"net/url"
	"strconv"
)

func itoa(value int) string {
	return strconv.Itoa(value)
}

func pageURL(base string, page int, scope string) string {
	query := url.Values{}
	query.Set("page", itoa(page))
	if scope != "" {
		query.Set("scope", scope)
	}
	return base + "?" + query.Encode()
}
