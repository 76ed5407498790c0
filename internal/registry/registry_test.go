package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-farm/internal/core"
)

type stubGame struct {
	id   string
	opts Options
}

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return strings.ToUpper(g.id) }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func register(id string) {
	if Exists(id) {
		return
	}
	Register(id, func(o Options) Game { return &stubGame{id: id, opts: o} })
}

func TestRegisterCreate(t *testing.T) {
	register("stub_meadow")

	g, err := Create("stub_meadow", Options{Difficulty: "hard"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.(*stubGame).opts.Difficulty != "hard" {
		t.Error("options should reach the factory")
	}

	found := false
	for _, info := range List() {
		if info.ID == "stub_meadow" {
			found = info.Title == "STUB_MEADOW"
		}
	}
	if !found {
		t.Error("List should include the registered game with its title")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	register("stub_orchard")
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("stub_orchard", func(Options) Game { return &stubGame{id: "stub_orchard"} })
}

func TestCreateUnknownSuggests(t *testing.T) {
	register("stub_pasture")

	_, err := Create("stub_pastur", Options{})
	if err == nil {
		t.Fatal("unknown id should fail")
	}
	if !strings.Contains(err.Error(), `did you mean "stub_pasture"`) {
		t.Errorf("error = %q, expected suggestion", err.Error())
	}

	if s := Suggest("zzzzzzzzzzzzzz"); s != "" {
		t.Errorf("Suggest for nonsense = %q, expected none", s)
	}
}
