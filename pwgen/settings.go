package pwgen

const (
	// DefaultLength is the password length a new Generator starts with.
	DefaultLength = 12
	// DefaultQuantity is the batch size a new Generator starts with.
	DefaultQuantity = 1
)

// Class identifies one of the character classes a password may draw from.
type Class int

// Character classes, in alphabet order.
const (
	Uppercase Class = iota
	Lowercase
	Numbers
	Symbols
)

func (c Class) String() string {
	switch c {
	case Uppercase:
		return "uppercase"
	case Lowercase:
		return "lowercase"
	case Numbers:
		return "numbers"
	case Symbols:
		return "symbols"
	}
	return "unknown"
}

type (
	// Settings holds every option that influences password generation.
	Settings struct {
		Length   int
		Quantity int

		Uppercase bool
		Lowercase bool
		Numbers   bool
		Symbols   bool

		ExcludeSimilar  bool
		AllowDuplicates bool
		AllowSequential bool
	}

	// Snapshot is a read-only copy of a Generator's settings and its last
	// generated output.
	Snapshot struct {
		Settings Settings
		Output   []string
	}

	// Generator owns a Settings value and the most recent output. It is
	// mutated only through its methods and must be driven by one caller at a
	// time.
	Generator struct {
		settings Settings
		output   []string
		src      Source
	}
)

// DefaultSettings returns the settings a new Generator starts with.
func DefaultSettings() Settings {
	return Settings{
		Length:    DefaultLength,
		Quantity:  DefaultQuantity,
		Uppercase: true,
		Lowercase: true,
		Numbers:   true,
		Symbols:   true,
	}
}

// New creates a Generator with default settings. If src is nil, CryptoSource
// is used.
func New(src Source) *Generator {
	if src == nil {
		src = CryptoSource()
	}
	return &Generator{
		settings: DefaultSettings(),
		src:      src,
	}
}

// ToggleClass flips inclusion of the character class c.
func (g *Generator) ToggleClass(c Class) {
	switch c {
	case Uppercase:
		g.settings.Uppercase = !g.settings.Uppercase
	case Lowercase:
		g.settings.Lowercase = !g.settings.Lowercase
	case Numbers:
		g.settings.Numbers = !g.settings.Numbers
	case Symbols:
		g.settings.Symbols = !g.settings.Symbols
	}
}

// ToggleSimilarExclusion flips exclusion of similar looking characters.
func (g *Generator) ToggleSimilarExclusion() {
	g.settings.ExcludeSimilar = !g.settings.ExcludeSimilar
}

// ToggleDuplicates flips whether a character may repeat within a password.
func (g *Generator) ToggleDuplicates() {
	g.settings.AllowDuplicates = !g.settings.AllowDuplicates
}

// ToggleSequential flips whether code point neighbours may sit next to each
// other.
func (g *Generator) ToggleSequential() {
	g.settings.AllowSequential = !g.settings.AllowSequential
}

// SetLength sets the password length, flooring at 1.
func (g *Generator) SetLength(n int) {
	g.settings.Length = max(n, 1)
}

// IncreaseLength adds one to the password length.
func (g *Generator) IncreaseLength() {
	g.settings.Length++
}

// DecreaseLength removes one from the password length, flooring at 1.
func (g *Generator) DecreaseLength() {
	g.SetLength(g.settings.Length - 1)
}

// SetQuantity sets the batch size, flooring at 1.
func (g *Generator) SetQuantity(n int) {
	g.settings.Quantity = max(n, 1)
}

// IncreaseQuantity adds one to the batch size.
func (g *Generator) IncreaseQuantity() {
	g.settings.Quantity++
}

// DecreaseQuantity removes one from the batch size, flooring at 1.
func (g *Generator) DecreaseQuantity() {
	g.SetQuantity(g.settings.Quantity - 1)
}

// GenerateOne generates a single password and stores it as the output. On
// failure the previous output is left in place.
func (g *Generator) GenerateOne() (string, error) {
	pw, err := Generate(g.settings, g.src)
	if err != nil {
		return "", err
	}
	g.output = []string{pw}
	return pw, nil
}

// GenerateBatch generates Quantity passwords and stores them as the output.
// On failure the previous output is left in place.
func (g *Generator) GenerateBatch() ([]string, error) {
	passwords, err := GenerateBatch(g.settings, g.src)
	if err != nil {
		return nil, err
	}
	g.output = passwords
	return append([]string(nil), passwords...), nil
}

// Clear empties the stored output. Settings are not touched.
func (g *Generator) Clear() {
	g.output = nil
}

// Settings returns a copy of the current settings.
func (g *Generator) Settings() Settings {
	return g.settings
}

// Output returns a copy of the last generated passwords.
func (g *Generator) Output() []string {
	return append([]string(nil), g.output...)
}

// Snapshot returns a copy of the current state for rendering.
func (g *Generator) Snapshot() Snapshot {
	return Snapshot{
		Settings: g.settings,
		Output:   g.Output(),
	}
}
