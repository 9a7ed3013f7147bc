package tui

type Variant int

const (
	VariantPrimary Variant = iota
	VariantSecondary
)

// Button is a stateless control. Loading and Disabled both render it
// inactive; Loading also swaps the text.
type Button struct {
	Variant  Variant
	Text     string
	Icon     string
	Loading  bool
	Disabled bool
	Focused  bool
}

func (b Button) Active() bool {
	return !b.Loading && !b.Disabled
}

func (b Button) View() string {
	label := b.Text
	if b.Icon != "" {
		label = b.Icon + " " + label
	}
	if b.Loading {
		label = "◌ Loading..."
	}

	st := styles.Primary
	switch {
	case !b.Active():
		st = styles.Disabled
	case b.Variant == VariantSecondary:
		st = styles.Secondary
	}
	if b.Focused && b.Active() {
		st = st.Inherit(styles.Focused).Underline(true)
		label = "› " + label
	}
	return st.Render(label)
}
