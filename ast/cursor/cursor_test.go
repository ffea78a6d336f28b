// Copyright (C) 2024 The jlite authors. All Rights Reserved.

package cursor_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/parsekit/jlite/ast"
	"github.com/parsekit/jlite/ast/cursor"
)

const testDoc = `{
  "name": "zuul",
  "meta": {
    "owner": {
      "email": "zuul@example.com"
    },
    "tag": "v1"
  }
}`

func TestCursor(t *testing.T) {
	v := ast.MustParse(testDoc)

	tests := []struct {
		name string
		path []string
		want ast.Value
		fail bool
	}{
		{"NilInput", nil, v, false},
		{"NoMatch", []string{"nonesuch"}, v, true},
		{"TopKey", []string{"name"}, ast.String("zuul"), false},
		{"ObjPath", []string{"meta", "tag"}, ast.String("v1"), false},
		{"DeepPath", []string{"meta", "owner", "email"},
			ast.String("zuul@example.com"), false},
		{"ObjValue", []string{"meta", "owner"}, v.Find("meta").(*ast.Object).Find("owner"), false},
		{"ThroughString", []string{"name", "x"}, ast.String("zuul"), true},
		{"MissingMiddle", []string{"meta", "nope", "email"},
			v.Find("meta"), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := cursor.New(v).Down(tc.path...)
			err := c.Err()
			if err != nil {
				if tc.fail {
					t.Logf("Got expected error: %v", err)
				} else {
					t.Fatalf("Down %+v: unexpected error: %v", tc.path, err)
				}
			} else if tc.fail {
				t.Fatalf("Down %+v: got %v, want error", tc.path, c.Value())
			}
			if diff := cmp.Diff(tc.want, c.Value()); diff != "" {
				t.Errorf("Down %+v: wrong result (-want, +got):\n%s", tc.path, diff)
			}
		})
	}

	t.Run("UpReset", func(t *testing.T) {
		c := cursor.New(v).Down("meta", "owner", "email")
		if c.Err() != nil {
			t.Fatalf("Down: unexpected error: %v", c.Err())
		}
		if got := len(c.Path()); got != 4 {
			t.Errorf("Path length: got %d, want 4", got)
		}
		c.Up()
		if diff := cmp.Diff(v.Find("meta").(*ast.Object).Find("owner"), c.Value()); diff != "" {
			t.Errorf("Value after Up: (-want, +got):\n%s", diff)
		}
		c.Reset()
		if !c.AtOrigin() {
			t.Error("AtOrigin after Reset: got false, want true")
		}
		if c.Origin() != ast.Value(v) {
			t.Errorf("Origin: got %v, want the root", c.Origin())
		}
	})
}

func TestPath(t *testing.T) {
	v := ast.MustParse(testDoc)

	t.Run("String", func(t *testing.T) {
		got, err := cursor.Path[ast.String](v, "meta", "owner", "email")
		if err != nil {
			t.Fatalf("Path: unexpected error: %v", err)
		}
		if got != "zuul@example.com" {
			t.Errorf("Path: got %q, want zuul@example.com", got)
		}
	})
	t.Run("Object", func(t *testing.T) {
		got, err := cursor.Path[*ast.Object](v, "meta", "owner")
		if err != nil {
			t.Fatalf("Path: unexpected error: %v", err)
		}
		if email, err := got.StringValue("email"); err != nil || email != "zuul@example.com" {
			t.Errorf(`StringValue("email"): got %q, %v`, email, err)
		}
	})
	t.Run("WrongType", func(t *testing.T) {
		if got, err := cursor.Path[*ast.Object](v, "name"); err == nil {
			t.Errorf("Path: got %v, want error", got)
		}
	})
	t.Run("Missing", func(t *testing.T) {
		if got, err := cursor.Path[ast.String](v, "meta", "nope"); err == nil {
			t.Errorf("Path: got %v, want error", got)
		}
	})
}
