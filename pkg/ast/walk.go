package ast

import (
	"errors"
	"strconv"
)

// SkipChildren can be returned by a WalkFunc to skip the children of the
// current list or dictionary without stopping the walk.
var SkipChildren = errors.New("skip children")

// WalkFunc is called for every value of a tree. path is in Lookup syntax
// ("" for the root) and depth is 0 for the root.
type WalkFunc func(path string, depth int, v Value) error

// Walk visits v and its descendants depth-first in pre-order. Dictionary
// entries are visited in key order. The first non-nil error other than
// SkipChildren stops the walk and is returned.
func Walk(v Value, fn WalkFunc) error {
	return walk("", 0, v, fn)
}

func walk(path string, depth int, v Value, fn WalkFunc) error {
	if err := fn(path, depth, v); err != nil {
		if errors.Is(err, SkipChildren) {
			return nil
		}
		return err
	}
	switch {
	case v.IsList():
		for i, e := range v.List() {
			if err := walk(path+"["+strconv.Itoa(i)+"]", depth+1, e, fn); err != nil {
				return err
			}
		}
	case v.IsDictionary():
		for _, e := range v.(*Dictionary).entries {
			if err := walk(JoinKey(path, e.Key), depth+1, e.Value, fn); err != nil {
				return err
			}
		}
	}
	return nil
}
