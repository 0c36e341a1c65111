/*
Package server implements msgpack IPC for option filtering services.

The server reads binary msgpack messages from stdin and writes responses to
stdout, one object per message. This makes it embeddable behind editors,
pickers and search boxes through plain process pipes.

# IPC

Filter requests carry an ID, the typed query and an optional result cap:

	{"id": "req_001", "q": "waberg", "l": 24}

The server answers with the matching options ranked best first:

	{"id": "req_001", "s": [{"o": "Waberg High School", "v": "wab", "r": 1}], "c": 1, "t": 210}

The "t" field is the time spent filtering, in microseconds.

Control messages use an action field instead of a query:

	{"id": "ctl_001", "action": "get_info"}
	{"id": "ctl_002", "action": "set_limits", "max_limit": 32}

get_info reports the loaded option and rule counts. set_limits adjusts the
server's query bounds and persists them to the active config file.

Malformed or out-of-bounds requests get an error object carrying the request
ID, a message and a numeric code. The server never exits on a bad request;
only EOF on stdin or an unreadable stream stops the loop.
*/
package server

// FilterRequest - an option filtering request
type FilterRequest struct {
	ID    string `msgpack:"id"`
	Query string `msgpack:"q"`
	Limit int    `msgpack:"l,omitempty"`
}

// FilterMatch - one ranked option in a response
type FilterMatch struct {
	Label string `msgpack:"o"`
	Value any    `msgpack:"v,omitempty"`
	Rank  uint16 `msgpack:"r"`
}

// FilterResponse - filtering response
type FilterResponse struct {
	ID        string        `msgpack:"id"`
	Matches   []FilterMatch `msgpack:"s"`
	Count     int           `msgpack:"c"`
	TimeTaken int64         `msgpack:"t"`
}

// ControlRequest - server management request
type ControlRequest struct {
	ID       string `msgpack:"id"`
	Action   string `msgpack:"action"` // "get_info", "set_limits"
	MaxLimit *int   `msgpack:"max_limit,omitempty"`
	MinQuery *int   `msgpack:"min_query,omitempty"`
	MaxQuery *int   `msgpack:"max_query,omitempty"`
}

// ControlResponse - control operation response
type ControlResponse struct {
	ID          string `msgpack:"id"`
	Status      string `msgpack:"status"`
	Error       string `msgpack:"error,omitempty"`
	OptionCount int    `msgpack:"option_count,omitempty"`
	RuleCount   int    `msgpack:"rule_count,omitempty"`
}

// FilterError holds basic error information for failed requests
type FilterError struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
