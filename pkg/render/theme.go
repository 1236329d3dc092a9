package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
)

// ColorsFile is the project-local palette override, read from the working
// directory.
const ColorsFile = ".stylishcolors"

// Theme loading errors.
var (
	ErrThemeParse   = errors.New("invalid color override file")
	ErrUnknownRole  = errors.New("unknown color role")
	ErrUnknownColor = errors.New("unknown color name")
)

// Role is a semantic slot in the report that receives a color.
type Role int

const (
	RoleMeta Role = iota
	RoleReason
	RoleLinter
	RoleWarning
	RoleError
	RoleNoProblem

	roleCount
)

var roleNames = [roleCount]string{
	RoleMeta:      "meta",
	RoleReason:    "reason",
	RoleLinter:    "linter",
	RoleWarning:   "warning",
	RoleError:     "error",
	RoleNoProblem: "noProblem",
}

// String returns the key used for the role in override files.
func (r Role) String() string {
	if r < 0 || r >= roleCount {
		return "Role(" + strconv.Itoa(int(r)) + ")"
	}
	return roleNames[r]
}

// ParseRole looks up a role by its override-file key.
func ParseRole(name string) (Role, bool) {
	for i, n := range roleNames {
		if n == name {
			return Role(i), true
		}
	}
	return 0, false
}

// Palette maps every role to a validated color name.
type Palette [roleCount]string

// DefaultPalette returns the built-in colors.
func DefaultPalette() Palette {
	return Palette{
		RoleMeta:      "gray",
		RoleReason:    "white",
		RoleLinter:    "gray",
		RoleWarning:   "yellow",
		RoleError:     "red",
		RoleNoProblem: "green",
	}
}

// Color returns the color name assigned to r.
func (p Palette) Color(r Role) string {
	return p[r]
}

// LoadPalette returns the defaults merged with dir/.stylishcolors. A missing
// file is not an error; a malformed one is.
func LoadPalette(dir string) (Palette, error) {
	data, err := os.ReadFile(filepath.Join(dir, ColorsFile)) // #nosec G304 - fixed file name
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultPalette(), nil
	}
	if err != nil {
		return Palette{}, fmt.Errorf("read %s: %w", ColorsFile, err)
	}
	return ParsePalette(data)
}

// ParsePalette shallow-merges a JSON object of role -> color over the
// defaults. Roles and colors are validated here, not at render time.
func ParsePalette(data []byte) (Palette, error) {
	var overrides map[string]string
	if err := json.Unmarshal(data, &overrides); err != nil {
		return Palette{}, fmt.Errorf("%w %s: %w", ErrThemeParse, ColorsFile, err)
	}

	p := DefaultPalette()
	for _, key := range slices.Sorted(maps.Keys(overrides)) {
		role, ok := ParseRole(key)
		if !ok {
			return Palette{}, fmt.Errorf("%w %q in %s (expected one of %s)",
				ErrUnknownRole, key, ColorsFile, strings.Join(roleNames[:], ", "))
		}
		color := overrides[key]
		if _, ok := lookupStyler(color); !ok {
			return Palette{}, fmt.Errorf("%w %q for role %s in %s", ErrUnknownColor, color, key, ColorsFile)
		}
		p[role] = color
	}
	return p, nil
}

// Theme holds the palette resolved into styles for one renderer.
type Theme struct {
	roles [roleCount]lipgloss.Style
	path  lipgloss.Style
}

// Theme resolves the palette against r. Use a renderer bound to the output
// stream so color support is detected for that stream.
func (p Palette) Theme(r *lipgloss.Renderer) Theme {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	var t Theme
	for i, name := range p {
		style := r.NewStyle()
		if apply, ok := lookupStyler(name); ok {
			style = apply(style)
		}
		t.roles[i] = style
	}
	t.path = r.NewStyle().Underline(true)
	return t
}

// Style returns the style for a role.
func (t Theme) Style(r Role) lipgloss.Style {
	return t.roles[r]
}

// Path returns the style used for file headers.
func (t Theme) Path() lipgloss.Style {
	return t.path
}

type styler func(lipgloss.Style) lipgloss.Style

var ansiNames = []string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

// stylers is keyed by case-folded chalk-style names.
var stylers = buildStylers()

func buildStylers() map[string]styler {
	m := map[string]styler{
		"reset":         func(s lipgloss.Style) lipgloss.Style { return s },
		"bold":          func(s lipgloss.Style) lipgloss.Style { return s.Bold(true) },
		"dim":           func(s lipgloss.Style) lipgloss.Style { return s.Faint(true) },
		"italic":        func(s lipgloss.Style) lipgloss.Style { return s.Italic(true) },
		"underline":     func(s lipgloss.Style) lipgloss.Style { return s.Underline(true) },
		"inverse":       func(s lipgloss.Style) lipgloss.Style { return s.Reverse(true) },
		"strikethrough": func(s lipgloss.Style) lipgloss.Style { return s.Strikethrough(true) },
	}
	for i, name := range ansiNames {
		m[name] = foreground(strconv.Itoa(i))
		m[name+"bright"] = foreground(strconv.Itoa(i + 8))
		m["bg"+name] = background(strconv.Itoa(i))
		m["bg"+name+"bright"] = background(strconv.Itoa(i + 8))
	}
	for _, gray := range []string{"gray", "grey"} {
		m[gray] = foreground("8")
		m["bg"+gray] = background("8")
	}
	return m
}

func foreground(c string) styler {
	return func(s lipgloss.Style) lipgloss.Style { return s.Foreground(lipgloss.Color(c)) }
}

func background(c string) styler {
	return func(s lipgloss.Style) lipgloss.Style { return s.Background(lipgloss.Color(c)) }
}

// lookupStyler resolves a color name, a hex color or an ANSI-256 index.
func lookupStyler(name string) (styler, bool) {
	if s, ok := stylers[cases.Fold().String(strings.TrimSpace(name))]; ok {
		return s, true
	}
	if isHexColor(name) {
		return foreground(name), true
	}
	if n, err := strconv.Atoi(name); err == nil && n >= 0 && n <= 255 {
		return foreground(name), true
	}
	return nil, false
}

func isHexColor(s string) bool {
	if !strings.HasPrefix(s, "#") || (len(s) != 4 && len(s) != 7) {
		return false
	}
	_, err := strconv.ParseUint(s[1:], 16, 32)
	return err == nil
}
