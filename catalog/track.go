package catalog

import (
	"fmt"
	"strconv"
)

// Track is a single item of the catalog's results array.
type Track struct {
	ID         Int    `json:"id"`
	Name       string `json:"name"`
	ArtistName string `json:"artist_name"`
	Duration   Int    `json:"duration"`
	Image      string `json:"image"`
	Audio      string `json:"audio"`
}

// Int decodes integers the catalog may serialize either as JSON numbers or
// as numeric strings.
type Int int64

func (n *Int) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" {
		return nil
	}
	if unquoted, err := strconv.Unquote(s); nil == err {
		s = unquoted
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if nil != err {
		return fmt.Errorf("invalid integer value %s: %v", b, err)
	}
	*n = Int(v)
	return nil
}
