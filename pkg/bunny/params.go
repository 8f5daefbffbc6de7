package bunny

import (
	"net/url"
	"strconv"
)

// params assembles query strings for the Stream API. Booleans are
// serialized as the literal strings "true" and "false"; optional
// values that were never set produce no key at all.
type params struct {
	url.Values
}

func newParams() params {
	return params{Values: url.Values{}}
}

// setString sets key unless the value is empty.
func (p params) setString(key, value string) {
	if value != "" {
		p.Set(key, value)
	}
}

func (p params) setInt(key string, value int) {
	p.Set(key, strconv.Itoa(value))
}

func (p params) setInt64(key string, value int64) {
	p.Set(key, strconv.FormatInt(value, 10))
}

func (p params) setBool(key string, value bool) {
	p.Set(key, strconv.FormatBool(value))
}
