package onboarding

import (
	"context"
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	onboard "github.com/karimf/wortspatz/internal/onboarding"
	"github.com/karimf/wortspatz/internal/profile"
	"github.com/karimf/wortspatz/internal/router"
	"github.com/karimf/wortspatz/internal/screen"
	"github.com/karimf/wortspatz/internal/ui/components"
	"github.com/karimf/wortspatz/internal/ui/layout"
	"github.com/karimf/wortspatz/internal/ui/theme"
)

// slide is one intro page shown before the profile form.
type slide struct {
	icon  string
	title string
	text  string
}

var slides = []slide{
	{"🐦", "أهلًا بك في Wortspatz!", "تعلّم الألمانية مع أصدقائك الصغار"},
	{"🃏", "بطاقات وألعاب", "كلمات جديدة مع بطاقات ملوّنة واختبارات ممتعة"},
	{"⭐", "اجمع النجوم", "كل إجابة صحيحة تمنحك نجومًا ومكافآت"},
}

type formStep int

const (
	stepName formStep = iota
	stepLevel
	stepAvatar
)

// profileCreatedMsg carries the result of the create call.
type profileCreatedMsg struct {
	Profile *profile.Profile
	Err     error
}

// OnboardingScreen walks a new learner through the intro slides and the
// profile form. It replaces itself with the dashboard once the profile is
// persisted; there is no way back into it afterwards.
type OnboardingScreen struct {
	gate        *onboard.Gate
	dashFactory func(*profile.Profile) screen.Screen

	slideIndex int
	inForm     bool
	step       formStep

	nameInput   components.TextInput
	levelIndex  int
	avatarIndex int

	alert    string
	creating bool
}

var _ screen.Screen = (*OnboardingScreen)(nil)
var _ screen.KeyHintProvider = (*OnboardingScreen)(nil)

// New creates the onboarding flow. dashFactory builds the dashboard for the
// freshly created profile.
func New(gate *onboard.Gate, dashFactory func(*profile.Profile) screen.Screen) *OnboardingScreen {
	return &OnboardingScreen{
		gate:        gate,
		dashFactory: dashFactory,
		nameInput:   components.NewTextInput("اكتب اسمك هنا", 24),
	}
}

func (o *OnboardingScreen) Title() string {
	return "البداية"
}

func (o *OnboardingScreen) Init() tea.Cmd {
	return nil
}

func (o *OnboardingScreen) KeyHints() []layout.KeyHint {
	if !o.inForm {
		return []layout.KeyHint{
			{Key: "Enter", Description: "التالي"},
			{Key: "Tab", Description: "تخطّي"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "التالي"},
		{Key: "Esc", Description: "رجوع"},
	}
}

func (o *OnboardingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case profileCreatedMsg:
		return o.handleCreated(msg)
	case tea.KeyMsg:
		return o.handleKey(msg)
	}

	if o.inForm && o.step == stepName {
		var cmd tea.Cmd
		o.nameInput, cmd = o.nameInput.Update(msg)
		return o, cmd
	}
	return o, nil
}

func (o *OnboardingScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if o.creating {
		return o, nil
	}

	if !o.inForm {
		switch msg.String() {
		case "enter", "right", "l":
			if o.slideIndex < len(slides)-1 {
				o.slideIndex++
			} else {
				o.enterForm()
			}
		case "left", "h":
			if o.slideIndex > 0 {
				o.slideIndex--
			}
		case "tab":
			o.enterForm()
		}
		return o, nil
	}

	key := msg.String()
	switch o.step {
	case stepName:
		switch key {
		case "enter":
			o.alert = ""
			o.step = stepLevel
			return o, nil
		default:
			var cmd tea.Cmd
			o.nameInput, cmd = o.nameInput.Update(msg)
			return o, cmd
		}

	case stepLevel:
		switch key {
		case "up", "k":
			if o.levelIndex > 0 {
				o.levelIndex--
			}
		case "down", "j":
			if o.levelIndex < len(profile.AllLevels())-1 {
				o.levelIndex++
			}
		case "enter":
			o.alert = ""
			o.step = stepAvatar
		case "esc":
			o.step = stepName
		}
		return o, nil

	case stepAvatar:
		switch key {
		case "left", "h":
			if o.avatarIndex > 0 {
				o.avatarIndex--
			}
		case "right", "l":
			if o.avatarIndex < len(profile.Avatars())-1 {
				o.avatarIndex++
			}
		case "enter":
			return o, o.createProfile()
		case "esc":
			o.step = stepLevel
		}
		return o, nil
	}

	return o, nil
}

func (o *OnboardingScreen) enterForm() {
	o.inForm = true
	o.step = stepName
}

func (o *OnboardingScreen) createProfile() tea.Cmd {
	o.creating = true
	name := o.nameInput.Value()
	level := profile.AllLevels()[o.levelIndex]
	avatarKey := profile.Avatars()[o.avatarIndex].Key

	return func() tea.Msg {
		p, err := o.gate.CreateProfile(context.Background(), name, level, avatarKey)
		return profileCreatedMsg{Profile: p, Err: err}
	}
}

func (o *OnboardingScreen) handleCreated(msg profileCreatedMsg) (screen.Screen, tea.Cmd) {
	o.creating = false

	if msg.Err != nil {
		var verr *onboard.ValidationError
		if errors.As(msg.Err, &verr) {
			o.alert = alertFor(verr.Field)
			o.stepTo(verr.Field)
			return o, nil
		}
		o.alert = "تعذّر حفظ الملف، حاول مرة أخرى"
		return o, nil
	}

	dash := o.dashFactory(msg.Profile)
	p := msg.Profile
	return o, tea.Batch(
		func() tea.Msg {
			return screen.ProfileChangedMsg{Name: p.Name, AvatarKey: p.AvatarKey, Stars: p.Stars}
		},
		func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: dash}
		},
	)
}

// stepTo jumps the form back to the field that failed validation.
func (o *OnboardingScreen) stepTo(field string) {
	switch field {
	case "name":
		o.step = stepName
	case "level":
		o.step = stepLevel
	case "avatar":
		o.step = stepAvatar
	}
}

func alertFor(field string) string {
	switch field {
	case "name":
		return "يرجى إدخال الاسم"
	case "level":
		return "يرجى اختيار المستوى"
	case "avatar":
		return "يرجى اختيار الصورة الرمزية"
	}
	return "يرجى إكمال جميع الحقول"
}

func (o *OnboardingScreen) View(width, height int) string {
	if !o.inForm {
		return o.viewSlide(width, height)
	}
	return o.viewForm(width, height)
}

func (o *OnboardingScreen) viewSlide(width, height int) string {
	s := slides[o.slideIndex]

	sections := []string{
		lipgloss.NewStyle().Foreground(theme.Primary).Render(s.icon),
		"",
		theme.Title.Render(s.title),
		theme.Subtitle.Render(s.text),
		"",
		components.Dots(len(slides), o.slideIndex),
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (o *OnboardingScreen) viewForm(width, height int) string {
	cw := components.ContentWidth(width)
	var sections []string

	sections = append(sections, theme.Title.Render("أنشئ ملفك"))
	sections = append(sections, "")

	switch o.step {
	case stepName:
		sections = append(sections, theme.Body.Render("ما اسمك؟"))
		sections = append(sections, "")
		sections = append(sections, o.nameInput.View())

	case stepLevel:
		sections = append(sections, theme.Body.Render("اختر مستواك"))
		sections = append(sections, "")
		for i, lvl := range profile.AllLevels() {
			label := lvl.DisplayName()
			if i == o.levelIndex {
				sections = append(sections, theme.Selected.Render("  ▸ "+label))
			} else {
				sections = append(sections, theme.Unselected.Render("    "+label))
			}
		}

	case stepAvatar:
		sections = append(sections, theme.Body.Render("اختر صورتك الرمزية"))
		sections = append(sections, "")
		var tiles []string
		for i, av := range profile.Avatars() {
			style := lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(theme.Border).
				Padding(0, 1).
				Margin(0, 1)
			if i == o.avatarIndex {
				style = style.BorderForeground(theme.Primary)
			}
			tiles = append(tiles, style.Render(av.Icon))
		}
		sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, tiles...))
		sections = append(sections, "")
		start := components.NewButton("ابدأ اللعب", true, nil)
		sections = append(sections, start.View())
	}

	if o.alert != "" {
		sections = append(sections, "")
		sections = append(sections, theme.Incorrect.Render(o.alert))
	}

	content := components.PromptCard(strings.Join(sections, "\n"), cw)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
