package server

import (
	"bytes"
	"io"
	"testing"

	"github.com/vmihailenco/msgpack/v5"
)

type stubOracle struct{}

func (stubOracle) Commonality(word string) float64 { return 0 }

func (stubOracle) LetterCounts(words []string) map[byte]int {
	counts := make(map[byte]int)
	for _, w := range words {
		var seen [256]bool
		for i := 0; i < len(w); i++ {
			if !seen[w[i]] {
				seen[w[i]] = true
				counts[w[i]]++
			}
		}
	}
	return counts
}

// reply covers the fields of both Response and ErrorResponse; msgpack skips
// keys a struct does not declare.
type reply struct {
	ID        string           `msgpack:"id"`
	Status    string           `msgpack:"status"`
	Recs      []Recommendation `msgpack:"recs"`
	Remaining int              `msgpack:"n"`
	Guesses   int              `msgpack:"g"`
	Error     string           `msgpack:"e"`
	Code      int              `msgpack:"c"`
}

func runSession(t *testing.T, requests []Request) []reply {
	t.Helper()

	var in bytes.Buffer
	enc := msgpack.NewEncoder(&in)
	for _, r := range requests {
		if err := enc.Encode(r); err != nil {
			t.Fatalf("encoding request: %v", err)
		}
	}

	var out bytes.Buffer
	srv, err := NewServerWithIO([]string{"apple", "angle", "table"}, stubOracle{}, &in, &out)
	if err != nil {
		t.Fatalf("NewServerWithIO: %v", err)
	}
	if err := srv.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	var replies []reply
	dec := msgpack.NewDecoder(&out)
	for {
		var r reply
		if err := dec.Decode(&r); err != nil {
			if err == io.EOF {
				return replies
			}
			t.Fatalf("decoding reply: %v", err)
		}
		replies = append(replies, r)
	}
}

func TestServerSession(t *testing.T) {
	replies := runSession(t, []Request{
		{ID: "r1", Op: "guess", Word: "angle"},
		{ID: "r2", Op: "feedback", Key: "ggggg"},
		{ID: "r3", Op: "recommend", Limit: 2},
		{ID: "r4", Op: "reset"},
	})

	// Start sends a ready banner before any request is handled.
	if len(replies) != 5 {
		t.Fatalf("got %d replies, want 5: %+v", len(replies), replies)
	}
	if replies[0].Status != "ready" || replies[0].Remaining != 3 {
		t.Errorf("ready reply = %+v", replies[0])
	}

	if replies[1].ID != "r1" || replies[1].Guesses != 1 || replies[1].Remaining != 3 {
		t.Errorf("guess reply = %+v", replies[1])
	}

	if replies[2].ID != "r2" || replies[2].Remaining != 1 {
		t.Errorf("feedback reply = %+v", replies[2])
	}

	rec := replies[3]
	if rec.ID != "r3" || len(rec.Recs) != 1 || rec.Recs[0].Word != "angle" {
		t.Errorf("recommend reply = %+v", rec)
	}

	if replies[4].ID != "r4" || replies[4].Remaining != 3 || replies[4].Guesses != 0 {
		t.Errorf("reset reply = %+v", replies[4])
	}
}

func TestServerErrors(t *testing.T) {
	replies := runSession(t, []Request{
		{ID: "e1", Op: "explode"},
		{ID: "e2", Op: "guess"},
		{ID: "e3", Op: "guess", Word: "apple"},
		{ID: "e4", Op: "feedback", Key: "gx---"},
		{ID: "e5", Op: "feedback", Key: "gg---"},
		{ID: "e6", Op: "recommend", Limit: 3},
	})

	if len(replies) != 7 {
		t.Fatalf("got %d replies, want 7: %+v", len(replies), replies)
	}

	testCases := []struct {
		reply       reply
		wantCode    int
		description string
	}{
		{replies[1], 400, "unknown op"},
		{replies[2], 400, "guess without word"},
		{replies[4], 400, "malformed feedback key"},
		{replies[5], 404, "feedback eliminating every candidate"},
		{replies[6], 404, "recommend with empty candidate set"},
	}
	for _, tc := range testCases {
		if tc.reply.Code != tc.wantCode || tc.reply.Error == "" {
			t.Errorf("%s: reply = %+v, want code %d with message", tc.description, tc.reply, tc.wantCode)
		}
	}

	// The valid guess in between still succeeds.
	if replies[3].Status != "ok" || replies[3].Guesses != 1 {
		t.Errorf("guess reply = %+v", replies[3])
	}
}
