package leaderboard

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// ErrCorrupt reports a stored record that is not a JSON array of entries
var ErrCorrupt = errors.New("leaderboard: corrupt record")

// Encode renders entries as [{"name":...,"score":...},...]
func Encode(entries []Entry) ([]byte, error) {
	out := []byte(`[]`)
	for _, e := range entries {
		elem, err := sjson.SetBytes([]byte(`{}`), "name", e.Name)
		if err != nil {
			return nil, fmt.Errorf("leaderboard: encode name: %w", err)
		}
		if elem, err = sjson.SetBytes(elem, "score", e.Score); err != nil {
			return nil, fmt.Errorf("leaderboard: encode score: %w", err)
		}
		if out, err = sjson.SetRawBytes(out, "-1", elem); err != nil {
			return nil, fmt.Errorf("leaderboard: append entry: %w", err)
		}
	}
	return out, nil
}

// Decode parses a stored record; entries missing a name are skipped
func Decode(data []byte) ([]Entry, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrCorrupt
	}
	res := gjson.ParseBytes(data)
	if !res.IsArray() {
		return nil, ErrCorrupt
	}
	out := make([]Entry, 0, int(res.Get("#").Int()))
	res.ForEach(func(_, v gjson.Result) bool {
		name := v.Get("name")
		if name.Type != gjson.String {
			return true
		}
		out = append(out, Entry{Name: name.Str, Score: int(v.Get("score").Int())})
		return true
	})
	return out, nil
}
