package util

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
)

func SortedKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := maps.Keys(m)
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}

func Clamp[A constraints.Integer | constraints.Float](v, lo, hi A) A {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func Sum[A constraints.Integer | constraints.Float](nums []A) A {
	var total A
	for _, v := range nums {
		total += v
	}
	return total
}

// WriteJSON writes data as indented JSON, creating parent directories.
func WriteJSON(filename string, data any) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0777); err != nil {
		return errors.Wrapf(err, "could not create dir for %s", filename)
	}
	buf, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return errors.Wrap(err, "could not encode json")
	}
	if err := os.WriteFile(filename, buf, 0666); err != nil {
		return errors.Wrapf(err, "write failed for %s", filename)
	}
	return nil
}

func ReadJSON[A any](filename string) (A, error) {
	var data A
	buf, err := os.ReadFile(filename)
	if err != nil {
		return data, errors.Wrapf(err, "could not read %s", filename)
	}
	if err := json.Unmarshal(buf, &data); err != nil {
		return data, errors.Wrapf(err, "could not decode %s", filename)
	}
	return data, nil
}
