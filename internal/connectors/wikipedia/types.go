package wikipedia

import "errors"

// errTransport marks network-level failures that are worth retrying.
var errTransport = errors.New("transport error")

// queryResponse is the Action API shape for prop=links|categories queries
// with formatversion=2.
type queryResponse struct {
	Continue map[string]string `json:"continue"`
	Query    struct {
		Pages []pageResult `json:"pages"`
	} `json:"query"`
}

type pageResult struct {
	Title      string  `json:"title"`
	Missing    bool    `json:"missing"`
	Invalid    bool    `json:"invalid"`
	Links      []title `json:"links"`
	Categories []title `json:"categories"`
	Extract    string  `json:"extract"`
}

type title struct {
	Title string `json:"title"`
}

// searchResponse is the Action API shape for list=search queries.
type searchResponse struct {
	Query struct {
		Search []searchHit `json:"search"`
	} `json:"query"`
}

type searchHit struct {
	Title string `json:"title"`
}

// errorEnvelope is the Action API error shape.
type errorEnvelope struct {
	Error struct {
		Code string `json:"code"`
		Info string `json:"info"`
	} `json:"error"`
}
