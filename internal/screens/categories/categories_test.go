package categories

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/karimf/wortspatz/internal/activity"
	"github.com/karimf/wortspatz/internal/audio"
	"github.com/karimf/wortspatz/internal/content"
	"github.com/karimf/wortspatz/internal/ledger"
	onboard "github.com/karimf/wortspatz/internal/onboarding"
	"github.com/karimf/wortspatz/internal/profile"
	"github.com/karimf/wortspatz/internal/router"
	"github.com/karimf/wortspatz/internal/screen"
)

type mockProfileRepo struct {
	p *profile.Profile
}

func (m *mockProfileRepo) Load(context.Context) (*profile.Profile, error) { return m.p, nil }
func (m *mockProfileRepo) Save(_ context.Context, p *profile.Profile) error {
	m.p = p
	return nil
}
func (m *mockProfileRepo) Clear(context.Context) error {
	m.p = nil
	return nil
}

type stubOnboarding struct{}

func (s *stubOnboarding) Init() tea.Cmd                           { return nil }
func (s *stubOnboarding) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubOnboarding) View(int, int) string                    { return "onboarding" }
func (s *stubOnboarding) Title() string                           { return "onboarding" }

func testCategories(t *testing.T, repo *mockProfileRepo) *CategoriesScreen {
	t.Helper()
	catalog, err := content.Load()
	if err != nil {
		t.Fatal(err)
	}
	gate := onboard.NewGate(repo, nil)
	ledg := ledger.New(repo, nil, nil)
	return New(catalog, ledg, gate, audio.NopPlayer{}, activity.TypeQuiz, "الاختبار",
		func() screen.Screen { return &stubOnboarding{} })
}

func TestInitRechecksProfile(t *testing.T) {
	repo := &mockProfileRepo{p: profile.New("Layla", profile.LevelBeginner, "avatar3")}
	c := testCategories(t, repo)

	cmd := c.Init()
	if cmd == nil {
		t.Fatal("expected a gate recheck command")
	}

	msg := cmd()
	check, ok := msg.(gateCheckMsg)
	if !ok {
		t.Fatalf("msg = %T, want gateCheckMsg", msg)
	}
	if !check.HasProfile {
		t.Error("existing profile should pass the recheck")
	}

	_, cmd = c.Update(check)
	if cmd != nil {
		t.Error("passing recheck should not navigate")
	}
}

func TestMissingProfileRoutesToOnboarding(t *testing.T) {
	c := testCategories(t, &mockProfileRepo{})

	msg := c.Init()()
	_, cmd := c.Update(msg)
	if cmd == nil {
		t.Fatal("missing profile should navigate")
	}

	rep, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("cmd msg = %T, want ReplaceScreenMsg", cmd())
	}
	if rep.Screen.Title() != "onboarding" {
		t.Error("replacement should be the onboarding screen")
	}
}

func TestMenuListsAllCategories(t *testing.T) {
	repo := &mockProfileRepo{p: profile.New("Layla", profile.LevelBeginner, "avatar3")}
	c := testCategories(t, repo)

	if len(c.menu.Items) != 5 {
		t.Errorf("menu items = %d, want 5", len(c.menu.Items))
	}
}

func TestEnterPushesActivityScreen(t *testing.T) {
	repo := &mockProfileRepo{p: profile.New("Layla", profile.LevelBeginner, "avatar3")}
	c := testCategories(t, repo)

	_, cmd := c.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter should push the activity screen")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Error("expected PushScreenMsg")
	}
}
