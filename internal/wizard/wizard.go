// Package wizard implements the questionnaire as an explicit finite-state
// machine: an enumerated step plus the settings under construction,
// advanced by a pure transition function. No process-wide state.
package wizard

import (
	"fmt"
	"regexp"
	"strings"

	"sitegen_server/internal/types"
)

// Step identifies one question of the wizard.
type Step string

const (
	StepTitle       Step = "title"
	StepDescription Step = "description"
	StepFramework   Step = "framework"
	StepContact     Step = "contact"
	StepAbout       Step = "about"
	StepNavbar      Step = "navbar"
	StepNavbarColor Step = "navbar_color"
	StepAdvanced    Step = "advanced"
	StepSidebar     Step = "sidebar"
	StepPages       Step = "pages"
	StepFooter      Step = "footer"
	StepLogin       Step = "login"
	StepCharts      Step = "charts"
	StepTheme       Step = "theme"
	StepCustomColor Step = "custom_color"
	StepReview      Step = "review"
)

// Prompt returns the question shown for a step.
func Prompt(step Step) string {
	switch step {
	case StepTitle:
		return "What is the title of your website?"
	case StepDescription:
		return "Describe your website in one or two sentences (optional)."
	case StepFramework:
		return "Which framework do you want: static-html or react-tailwind?"
	case StepContact:
		return "Include a contact page? (yes/no)"
	case StepAbout:
		return "Include an about page? (yes/no)"
	case StepNavbar:
		return "Include a navbar? (yes/no)"
	case StepNavbarColor:
		return "Navbar color: a hex value like #1a73e8 or a style class like bg-gray-900."
	case StepAdvanced:
		return "Do you want advanced options? (yes/no)"
	case StepSidebar:
		return "Include a sidebar? (yes/no)"
	case StepPages:
		return "List your pages, comma separated (e.g. Home, About, Blog)."
	case StepFooter:
		return "Include a footer? (yes/no)"
	case StepLogin:
		return "Include a login/signup page? (yes/no)"
	case StepCharts:
		return "Include charts/cards? (yes/no)"
	case StepTheme:
		return "Theme: light, dark or custom?"
	case StepCustomColor:
		return "Custom primary color (hex, e.g. #5B2E0F)."
	case StepReview:
		return "Review your choices and generate the site."
	}
	return ""
}

var hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Apply advances the questionnaire: given the current step, the settings
// collected so far and the user's input, it returns the next step and the
// updated settings. It is a pure function; Settings is passed and
// returned by value.
func Apply(step Step, settings types.Settings, input string) (Step, types.Settings, error) {
	input = strings.TrimSpace(input)

	switch step {
	case StepTitle:
		if input != "" {
			settings.Title = input
		}
		return StepDescription, settings, nil

	case StepDescription:
		settings.Description = input
		return StepFramework, settings, nil

	case StepFramework:
		switch strings.ToLower(input) {
		case "", "static", "static-html", "html":
			settings.Framework = types.FrameworkStaticHTML
		case "react", "react-tailwind", "tailwind":
			settings.Framework = types.FrameworkReactTailwind
		default:
			return step, settings, fmt.Errorf("unknown framework %q: choose static-html or react-tailwind", input)
		}
		return StepContact, settings, nil

	case StepContact:
		v, err := parseBool(input)
		if err != nil {
			return step, settings, err
		}
		settings.Contact = v
		return StepAbout, settings, nil

	case StepAbout:
		v, err := parseBool(input)
		if err != nil {
			return step, settings, err
		}
		settings.About = v
		return StepNavbar, settings, nil

	case StepNavbar:
		v, err := parseBool(input)
		if err != nil {
			return step, settings, err
		}
		settings.Navbar = v
		if v {
			return StepNavbarColor, settings, nil
		}
		return StepAdvanced, settings, nil

	case StepNavbarColor:
		if input != "" {
			settings.NavbarColor = input
		}
		return StepAdvanced, settings, nil

	case StepAdvanced:
		v, err := parseBool(input)
		if err != nil {
			return step, settings, err
		}
		if v {
			return StepSidebar, settings, nil
		}
		return StepReview, settings, nil

	case StepSidebar:
		v, err := parseBool(input)
		if err != nil {
			return step, settings, err
		}
		settings.Sidebar = v
		return StepPages, settings, nil

	case StepPages:
		if input != "" {
			var pages []string
			for _, p := range strings.Split(input, ",") {
				if p = strings.TrimSpace(p); p != "" {
					pages = append(pages, p)
				}
			}
			if len(pages) > 0 {
				settings.Pages = pages
			}
		}
		return StepFooter, settings, nil

	case StepFooter:
		v, err := parseBool(input)
		if err != nil {
			return step, settings, err
		}
		settings.Footer = v
		return StepLogin, settings, nil

	case StepLogin:
		v, err := parseBool(input)
		if err != nil {
			return step, settings, err
		}
		settings.Login = v
		return StepCharts, settings, nil

	case StepCharts:
		v, err := parseBool(input)
		if err != nil {
			return step, settings, err
		}
		settings.Charts = v
		return StepTheme, settings, nil

	case StepTheme:
		switch strings.ToLower(input) {
		case "", "light":
			settings.Theme = types.ThemeLight
		case "dark":
			settings.Theme = types.ThemeDark
		case "custom":
			settings.Theme = types.ThemeCustom
			return StepCustomColor, settings, nil
		default:
			return step, settings, fmt.Errorf("unknown theme %q: choose light, dark or custom", input)
		}
		return StepReview, settings, nil

	case StepCustomColor:
		if input != "" {
			if !hexColorRe.MatchString(input) {
				return step, settings, fmt.Errorf("invalid color %q: expected #RRGGBB", input)
			}
			settings.CustomColor = input
		}
		return StepReview, settings, nil

	case StepReview:
		return step, settings, ErrComplete
	}

	return step, settings, fmt.Errorf("unknown wizard step %q", step)
}

func parseBool(input string) (bool, error) {
	switch strings.ToLower(input) {
	case "yes", "y", "true", "1":
		return true, nil
	case "no", "n", "false", "0", "":
		return false, nil
	}
	return false, fmt.Errorf("answer %q not understood: expected yes or no", input)
}
