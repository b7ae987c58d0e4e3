/*
Package server implements msgpack IPC for the guessing-game solver.

The server exposes one solver instance over stdin/stdout so editors and bots
can drive a game without linking the library. Messages are binary msgpack
values streamed back to back; every request carries an id that is echoed in
the response.

# IPC

A round trip looks like:

	{"id": "r1", "op": "guess", "w": "crane"}
	{"id": "r2", "op": "feedback", "k": "--g-y"}
	{"id": "r3", "op": "recommend", "l": 5}

The recommend response carries the ranked words with scores, plus the
remaining-candidate count and the guess number:

	{"id": "r3", "status": "ok", "recs": [{"w": "moist", "s": 41.2}], "n": 12, "g": 1}

Supported ops:

  - "guess"     records the played word and advances the guess counter
  - "feedback"  applies a result key ('-', 'y', 'g' per letter) to the candidate set
  - "recommend" returns the top suggestions for the next guess
  - "state"     returns the remaining count and guess number only
  - "reset"     rebuilds the solver from the full vocabulary for a new game

Errors come back as an error payload with the request id, a message, and a
code: 400 for malformed requests or keys, 404 once the candidate set is
empty, 500 for anything else.
*/
package server

// Request is an incoming solver request.
type Request struct {
	ID    string `msgpack:"id"`
	Op    string `msgpack:"op"`
	Word  string `msgpack:"w,omitempty"`
	Key   string `msgpack:"k,omitempty"`
	Limit int    `msgpack:"l,omitempty"`
}

// Recommendation is one ranked next-guess suggestion.
type Recommendation struct {
	Word  string  `msgpack:"w"`
	Score float64 `msgpack:"s"`
}

// Response is the reply for a successful op.
type Response struct {
	ID              string           `msgpack:"id"`
	Status          string           `msgpack:"status"`
	Recommendations []Recommendation `msgpack:"recs,omitempty"`
	Remaining       int              `msgpack:"n"`
	Guesses         int              `msgpack:"g"`
	TimeTaken       int64            `msgpack:"t"`
}

// ErrorResponse is the reply for a failed op.
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
