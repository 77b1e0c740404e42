package layout_test

import (
	"strings"
	"testing"

	binschema "github.com/reoring/binschema"
	"github.com/reoring/binschema/dsl"
	"github.com/reoring/binschema/layout"
)

func TestDescribe_Tree(t *testing.T) {
	rec := dsl.Struct("rec",
		dsl.UBInt16("id"),
		dsl.Field("tag", 4),
		dsl.FieldFor("data", "id"),
	)

	n := layout.Describe(rec)
	if n.Kind != "struct" || n.Name != "rec" {
		t.Fatalf("expected struct rec, got %s %s", n.Kind, n.Name)
	}
	if len(n.Children) != 3 {
		t.Fatalf("expected three children, got %d", len(n.Children))
	}
	if c := n.Children[0]; c.Kind != "format" || c.Size == nil || *c.Size != 2 {
		t.Fatalf("expected 2-byte format child, got %+v", c)
	}
	if c := n.Children[1]; c.Kind != "field" || c.Size == nil || *c.Size != 4 {
		t.Fatalf("expected 4-byte field child, got %+v", c)
	}
	// a context-driven length has no static size
	if c := n.Children[2]; c.Kind != "metafield" || c.Size != nil {
		t.Fatalf("expected sizeless metafield child, got %+v", c)
	}
	// the whole struct depends on the metafield, so no size either
	if n.Size != nil {
		t.Fatalf("expected no struct size, got %d", *n.Size)
	}
}

func TestDescribe_WrappersAndEmbeds(t *testing.T) {
	pixel := dsl.Struct("pixel",
		dsl.Embedded(dsl.Struct("point", dsl.UBInt8("x"), dsl.UBInt8("y"))),
		dsl.OneOf(dsl.UBInt8("color"), 1, 2, 3),
	)

	n := layout.Describe(pixel)
	if len(n.Children) != 2 {
		t.Fatalf("expected two children, got %d", len(n.Children))
	}
	emb := n.Children[0]
	if emb.Kind != "embedded" || !emb.Embedded {
		t.Fatalf("expected embedded wrapper, got %+v", emb)
	}
	if len(emb.Children) != 1 || emb.Children[0].Name != "point" {
		t.Fatalf("expected wrapped point struct, got %+v", emb.Children)
	}
	adapter := n.Children[1]
	if adapter.Kind != "adapter" || len(adapter.Children) != 1 {
		t.Fatalf("expected adapter with one child, got %+v", adapter)
	}
	if n.Size == nil || *n.Size != 3 {
		t.Fatalf("expected size 3, got %v", n.Size)
	}
}

func TestDescribe_Nil(t *testing.T) {
	if layout.Describe(nil) != nil {
		t.Fatalf("expected nil description")
	}
}

func TestMarshalJSON(t *testing.T) {
	rec := dsl.Struct("rec", dsl.UBInt8("a"))
	out, err := layout.MarshalJSON(rec)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	s := string(out)
	for _, want := range []string{`"kind": "struct"`, `"name": "rec"`, `"size": 1`} {
		if !strings.Contains(s, want) {
			t.Fatalf("expected %s in output:\n%s", want, s)
		}
	}
}

func TestDescribe_Pass(t *testing.T) {
	if layout.Describe(binschema.Pass).Kind != "pass" {
		t.Fatalf("expected pass kind")
	}
}
