package module

import (
	"testing"

	phttp "billnote/internal/platform/net/http"
	kit "billnote/internal/platform/testkit"
)

type classifierPort interface{ Classify(string) string }

type fakeClassifier struct{}

func (fakeClassifier) Classify(string) string { return "youtube" }

type portSet struct {
	Classifier classifierPort
	hidden     classifierPort
	Label      string
}

type stub struct{ ports any }

func (s stub) MountRoutes(phttp.Router) {}
func (s stub) Ports() any               { return s.ports }
func (s stub) Name() string             { return "stub" }

func TestPortsOf(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name  string
		ports any
		ok    bool
	}{
		{"nil", nil, false},
		{"direct", fakeClassifier{}, true},
		{"struct field", portSet{Classifier: fakeClassifier{}}, true},
		{"pointer to struct", &portSet{Classifier: fakeClassifier{}}, true},
		{"unexported only", portSet{hidden: fakeClassifier{}}, false},
		{"primitive", 42, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := PortsOf[classifierPort](stub{ports: tc.ports})
			if ok != tc.ok {
				t.Fatalf("ok = %v, want %v", ok, tc.ok)
			}
			if ok && got.Classify("x") != "youtube" {
				t.Fatal("wrong port returned")
			}
		})
	}
}

func TestMustPortsOf(t *testing.T) {
	t.Parallel()
	kit.MustNotPanic(t, func() { MustPortsOf[classifierPort](stub{ports: portSet{Classifier: fakeClassifier{}}}) })
	kit.MustPanic(t, func() { MustPortsOf[classifierPort](stub{}) })
}

func TestRegistry(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	Register("platform", portSet{Label: "p"})
	Register("meta", nil)

	got, ok := PortsAs[portSet]("platform")
	if !ok || got.Label != "p" {
		t.Fatalf("PortsAs = %+v %v", got, ok)
	}
	if _, ok := PortsAs[string]("platform"); ok {
		t.Fatal("wrong type must not match")
	}
	if _, ok := PortsAs[portSet]("missing"); ok {
		t.Fatal("missing name must not match")
	}
	if names := Names(); len(names) != 2 || names[0] != "meta" || names[1] != "platform" {
		t.Fatalf("Names = %v", names)
	}
}
