package binschema_test

import (
	"bytes"
	"context"
	"testing"

	binschema "github.com/reoring/binschema"
)

func ubint8(t *testing.T, name string) binschema.Construct {
	t.Helper()
	f, err := binschema.NewFormatField(name, '>', 'B')
	if err != nil {
		t.Fatalf("declaring field: %v", err)
	}
	return f
}

func TestStruct_OrderingAndContext(t *testing.T) {
	ctx := context.Background()
	data, err := binschema.NewMetaField("data", binschema.CtxLength("len"))
	if err != nil {
		t.Fatalf("declaring field: %v", err)
	}
	rec, err := binschema.NewStruct("p", ubint8(t, "len"), data)
	if err != nil {
		t.Fatalf("declaring struct: %v", err)
	}

	v, err := binschema.Parse(ctx, rec, []byte{3, 0xAA, 0xBB, 0xCC})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	cont := v.(*binschema.Container)
	if n, _ := cont.GetInt("len"); n != 3 {
		t.Fatalf("expected len=3, got %d", n)
	}
	if b, _ := cont.GetBytes("data"); !bytes.Equal(b, []byte{0xAA, 0xBB, 0xCC}) {
		t.Fatalf("expected data bytes, got %v", b)
	}

	out, err := binschema.Build(ctx, rec, cont)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !bytes.Equal(out, []byte{3, 0xAA, 0xBB, 0xCC}) {
		t.Fatalf("round trip mismatch: %x", out)
	}
}

func TestStruct_NamelessChildConsumesBytes(t *testing.T) {
	ctx := context.Background()
	pad, err := binschema.NewStaticField("", 2)
	if err != nil {
		t.Fatalf("declaring field: %v", err)
	}
	rec, err := binschema.NewStruct("rec", ubint8(t, "a"), pad, ubint8(t, "b"))
	if err != nil {
		t.Fatalf("declaring struct: %v", err)
	}
	v, err := binschema.Parse(ctx, rec, []byte{1, 0xFF, 0xFF, 2})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	cont := v.(*binschema.Container)
	if cont.Len() != 2 {
		t.Fatalf("expected two named entries, got %v", cont.Keys())
	}
	if b, _ := cont.GetInt("b"); b != 2 {
		t.Fatalf("expected b=2 after skipping filler, got %d", b)
	}
}

func TestStruct_DuplicateNameLaterWins(t *testing.T) {
	ctx := context.Background()
	rec, err := binschema.NewStruct("rec", ubint8(t, "x"), ubint8(t, "x"))
	if err != nil {
		t.Fatalf("declaring struct: %v", err)
	}
	v, err := binschema.Parse(ctx, rec, []byte{1, 2})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	cont := v.(*binschema.Container)
	if n, _ := cont.GetInt("x"); n != 2 {
		t.Fatalf("expected later child to win, got %d", n)
	}
	// both children still consumed their bytes
	if cont.Len() != 1 {
		t.Fatalf("expected a single entry, got %v", cont.Keys())
	}
}

func TestStruct_EmbedFlattensFields(t *testing.T) {
	ctx := context.Background()
	inner, err := binschema.NewStruct("inner", ubint8(t, "b"), ubint8(t, "c"))
	if err != nil {
		t.Fatalf("declaring struct: %v", err)
	}
	outer, err := binschema.NewStruct("outer",
		ubint8(t, "a"),
		binschema.NewEmbedded(inner),
		ubint8(t, "d"),
	)
	if err != nil {
		t.Fatalf("declaring struct: %v", err)
	}

	v, err := binschema.Parse(ctx, outer, []byte{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	cont := v.(*binschema.Container)
	want := binschema.NewContainer(
		binschema.P("a", int64(1)),
		binschema.P("b", int64(2)),
		binschema.P("c", int64(3)),
		binschema.P("d", int64(4)),
	)
	if !cont.Equal(want) {
		t.Fatalf("expected flat container %v, got %v", want.Keys(), cont.Keys())
	}

	// the flat container builds back through the embedded declaration
	out, err := binschema.Build(ctx, outer, cont)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !bytes.Equal(out, []byte{1, 2, 3, 4}) {
		t.Fatalf("round trip mismatch: %x", out)
	}

	// an equivalent flat struct parses to the same container
	flat, err := binschema.NewStruct("flat", ubint8(t, "a"), ubint8(t, "b"), ubint8(t, "c"), ubint8(t, "d"))
	if err != nil {
		t.Fatalf("declaring struct: %v", err)
	}
	fv, err := binschema.Parse(ctx, flat, []byte{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !fv.(*binschema.Container).Equal(cont) {
		t.Fatalf("embed output differs from flat struct output")
	}
}

func TestStruct_ParentReachableViaUnderscore(t *testing.T) {
	ctx := context.Background()
	// inner field length refers to a value parsed in the outer struct
	lengthFromParent := func(env *binschema.Context) (int64, error) {
		parent, ok := env.Get("_")
		if !ok {
			return 0, binschema.Issues{binschema.IssueAt("/", binschema.CodeInvalidType, "no parent frame", nil)}
		}
		return parent.(*binschema.Context).GetInt("len")
	}
	data, err := binschema.NewMetaField("data", lengthFromParent)
	if err != nil {
		t.Fatalf("declaring field: %v", err)
	}
	inner, err := binschema.NewStruct("inner", data)
	if err != nil {
		t.Fatalf("declaring struct: %v", err)
	}
	outer, err := binschema.NewStruct("outer", ubint8(t, "len"), inner)
	if err != nil {
		t.Fatalf("declaring struct: %v", err)
	}

	v, err := binschema.Parse(ctx, outer, []byte{2, 0xDE, 0xAD})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	cont := v.(*binschema.Container)
	sub, err := cont.GetContainer("inner")
	if err != nil {
		t.Fatalf("expected nested container: %v", err)
	}
	if b, _ := sub.GetBytes("data"); !bytes.Equal(b, []byte{0xDE, 0xAD}) {
		t.Fatalf("expected parent length to drive the read, got %v", b)
	}
}

func TestStruct_BuildNonContainerSkipsNamedChildren(t *testing.T) {
	ctx := context.Background()
	rec, err := binschema.NewStruct("rec", ubint8(t, "a"))
	if err != nil {
		t.Fatalf("declaring struct: %v", err)
	}
	out, err := binschema.Build(ctx, rec, "not a container")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected no output, got %x", out)
	}
}

func TestStruct_CollectsSiblingIssues(t *testing.T) {
	ctx := context.Background()
	a, err := binschema.NewFormatField("a", '>', 'H')
	if err != nil {
		t.Fatalf("declaring field: %v", err)
	}
	b, err := binschema.NewFormatField("b", '>', 'H')
	if err != nil {
		t.Fatalf("declaring field: %v", err)
	}
	rec, err := binschema.NewStruct("rec", a, b)
	if err != nil {
		t.Fatalf("declaring struct: %v", err)
	}

	// one byte cannot satisfy either child; both failures are reported
	_, err = binschema.Parse(ctx, rec, []byte{1})
	iss, ok := binschema.AsIssues(err)
	if !ok || len(iss) != 2 {
		t.Fatalf("expected two collected issues, got %v", err)
	}
	if iss[0].Path != "/rec/a" || iss[1].Path != "/rec/b" {
		t.Fatalf("expected both child paths, got %q %q", iss[0].Path, iss[1].Path)
	}

	_, err = binschema.Parse(ctx, rec, []byte{1}, binschema.ParseOpt{FailFast: true})
	iss, ok = binschema.AsIssues(err)
	if !ok || len(iss) != 1 {
		t.Fatalf("expected a single fail-fast issue, got %v", err)
	}
	if iss[0].Path != "/rec/a" {
		t.Fatalf("expected the first child path, got %q", iss[0].Path)
	}
}

func TestStruct_SizeOf(t *testing.T) {
	rec, err := binschema.NewStruct("rec", ubint8(t, "a"), ubint8(t, "b"))
	if err != nil {
		t.Fatalf("declaring struct: %v", err)
	}
	if n, err := binschema.SizeOf(rec); err != nil || n != 2 {
		t.Fatalf("expected size 2, got %d %v", n, err)
	}
}
