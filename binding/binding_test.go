package binding

import "testing"

func testData() map[string]interface{} {
	return map[string]interface{}{
		"event": map[string]interface{}{
			"name": "GopherCon",
			"year": 2026,
		},
		"speakers": []interface{}{
			map[string]interface{}{"name": "Ada"},
			map[string]interface{}{"name": "Grace"},
		},
	}
}

func TestInterpolate(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"plain text", "plain text"},
		{"${event.name}", "GopherCon"},
		{"${event.name} ${event.year}", "GopherCon 2026"},
		{"${speakers[0].name} and ${speakers[1].name}", "Ada and Grace"},
		{"${ event.name }", "GopherCon"},
		{"${missing.path}", "${missing.path}"},
		{"${speakers[9].name}", "${speakers[9].name}"},
		{"${speakers[x].name}", "${speakers[x].name}"},
		{"${speakers[0.name}", "${speakers[0.name}"},
		{"${}", "${}"},
	}
	data := testData()
	for _, tc := range cases {
		if got := Interpolate(tc.in, data); got != tc.want {
			t.Errorf("Interpolate(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestInterpolateNilData(t *testing.T) {
	if got := Interpolate("${event.name}", nil); got != "${event.name}" {
		t.Fatalf("nil data should leave placeholders untouched, got %q", got)
	}
}

func TestInterpolateNonContainerStops(t *testing.T) {
	data := map[string]interface{}{"n": 42}
	if got := Interpolate("${n.deeper}", data); got != "${n.deeper}" {
		t.Fatalf("descending into a scalar should not resolve, got %q", got)
	}
	if got := Interpolate("${n[0]}", data); got != "${n[0]}" {
		t.Fatalf("indexing a scalar should not resolve, got %q", got)
	}
}
