package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitegen_server/internal/types"
)

// walk answers one step and fails the test on any transition error.
func walk(t *testing.T, step Step, settings types.Settings, input string) (Step, types.Settings) {
	t.Helper()
	next, updated, err := Apply(step, settings, input)
	require.NoError(t, err, "step %s input %q", step, input)
	return next, updated
}

func TestApplyFullAdvancedPath(t *testing.T) {
	step := StepTitle
	settings := types.DefaultSettings()

	step, settings = walk(t, step, settings, "Portfolio")
	require.Equal(t, StepDescription, step)

	step, settings = walk(t, step, settings, "My personal site.")
	require.Equal(t, StepFramework, step)

	step, settings = walk(t, step, settings, "react-tailwind")
	require.Equal(t, StepContact, step)

	step, settings = walk(t, step, settings, "yes")
	require.Equal(t, StepAbout, step)

	step, settings = walk(t, step, settings, "yes")
	require.Equal(t, StepNavbar, step)

	step, settings = walk(t, step, settings, "yes")
	require.Equal(t, StepNavbarColor, step)

	step, settings = walk(t, step, settings, "#112233")
	require.Equal(t, StepAdvanced, step)

	step, settings = walk(t, step, settings, "yes")
	require.Equal(t, StepSidebar, step)

	step, settings = walk(t, step, settings, "yes")
	require.Equal(t, StepPages, step)

	step, settings = walk(t, step, settings, "Home, Blog")
	require.Equal(t, StepFooter, step)

	step, settings = walk(t, step, settings, "yes")
	require.Equal(t, StepLogin, step)

	step, settings = walk(t, step, settings, "yes")
	require.Equal(t, StepCharts, step)

	step, settings = walk(t, step, settings, "no")
	require.Equal(t, StepTheme, step)

	step, settings = walk(t, step, settings, "custom")
	require.Equal(t, StepCustomColor, step)

	step, settings = walk(t, step, settings, "#5B2E0F")
	require.Equal(t, StepReview, step)

	assert.Equal(t, "Portfolio", settings.Title)
	assert.Equal(t, types.FrameworkReactTailwind, settings.Framework)
	assert.Equal(t, "#112233", settings.NavbarColor)
	assert.True(t, settings.Sidebar)
	assert.True(t, settings.Footer)
	assert.True(t, settings.Login)
	assert.False(t, settings.Charts)
	assert.Equal(t, types.ThemeCustom, settings.Theme)
	assert.Equal(t, "#5B2E0F", settings.CustomColor)

	// Implied pages appended exactly once, base order preserved.
	assert.Equal(t, []string{"Home", "Blog", "Login", "Contact", "About"}, settings.NormalizedPages())

	_, _, err := Apply(step, settings, "anything")
	assert.ErrorIs(t, err, ErrComplete)
}

func TestApplyBasicPathSkipsAdvanced(t *testing.T) {
	step := StepAdvanced
	settings := types.DefaultSettings()

	next, _, err := Apply(step, settings, "no")
	require.NoError(t, err)
	assert.Equal(t, StepReview, next)
}

func TestApplyNavbarNoSkipsColor(t *testing.T) {
	next, settings, err := Apply(StepNavbar, types.DefaultSettings(), "no")
	require.NoError(t, err)
	assert.Equal(t, StepAdvanced, next)
	assert.False(t, settings.Navbar)
}

func TestApplyInvalidAnswerStaysOnStep(t *testing.T) {
	next, _, err := Apply(StepContact, types.DefaultSettings(), "maybe")
	require.Error(t, err)
	assert.Equal(t, StepContact, next)

	next, _, err = Apply(StepFramework, types.DefaultSettings(), "angular")
	require.Error(t, err)
	assert.Equal(t, StepFramework, next)

	next, _, err = Apply(StepCustomColor, types.DefaultSettings(), "red")
	require.Error(t, err)
	assert.Equal(t, StepCustomColor, next)
}

func TestApplyEmptyInputKeepsDefaults(t *testing.T) {
	next, settings, err := Apply(StepTitle, types.DefaultSettings(), "   ")
	require.NoError(t, err)
	assert.Equal(t, StepDescription, next)
	assert.Equal(t, "My Site", settings.Title)

	_, settings, err = Apply(StepPages, settings, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"Home"}, settings.Pages)
}

func TestNormalizedPagesDeduplicates(t *testing.T) {
	s := types.DefaultSettings()
	s.Pages = []string{"Home", "about", "Home"}
	s.About = true

	assert.Equal(t, []string{"Home", "about"}, s.NormalizedPages())
}

func TestStoreLifecycle(t *testing.T) {
	store := NewStore()
	session := store.Start()
	require.NotEmpty(t, session.ID)
	assert.Equal(t, StepTitle, session.Step)

	got, err := store.Get(session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, got.ID)

	updated, err := store.Answer(session.ID, "Portfolio")
	require.NoError(t, err)
	assert.Equal(t, StepDescription, updated.Step)
	assert.Equal(t, "Portfolio", updated.Settings.Title)

	rewound, err := store.Back(session.ID)
	require.NoError(t, err)
	assert.Equal(t, StepTitle, rewound.Step)
	// Already-recorded answers survive a rewind.
	assert.Equal(t, "Portfolio", rewound.Settings.Title)

	store.Delete(session.ID)
	_, err = store.Get(session.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStoreAnswerUnknownSession(t *testing.T) {
	store := NewStore()
	_, err := store.Answer("nope", "hello")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
